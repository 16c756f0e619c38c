package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

// Comments lists the comments on a picture. Works without a session; the
// feed is public.
func (a *App) Comments(ctx context.Context, pictureID string) error {
	comments, err := a.comments.List(ctx, pictureID)
	if err != nil {
		log.Printf("Could not load comments: %s", err.Error())
		return err
	}

	if len(comments) == 0 {
		fmt.Println("No comments yet")
		return nil
	}

	for _, c := range comments {
		mark := " "
		if a.user != nil && c.UserUUID == a.user.UUID {
			mark = "*"
		}
		fmt.Printf("%s %s  %s (%s): %s\n", mark, c.CommentID, c.Username, formatAge(c.CreatedAt), c.Comment)
	}
	return nil
}

// Comment prompts for text and posts a new comment on the picture.
// Multiline input is allowed; an empty line finishes.
func (a *App) Comment(ctx context.Context, pictureID string) error {
	text, err := getMultiline(a.reader, "Enter comment", os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.comments.Add(ctx, pictureID, text); err != nil {
		log.Printf("Could not add comment: %s", err.Error())
		return err
	}

	fmt.Println("Comment added")
	return nil
}

// Uncomment deletes one of the caller's comments.
func (a *App) Uncomment(ctx context.Context, commentID string) error {
	if err := a.comments.Remove(ctx, commentID); err != nil {
		log.Printf("Could not delete comment: %s", err.Error())
		return err
	}
	fmt.Println("Comment deleted")
	return nil
}

// EditComment prompts for replacement text and updates the comment.
func (a *App) EditComment(ctx context.Context, commentID string) error {
	text, err := getSimpleText(a.reader, "Enter new text", os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.comments.Update(ctx, commentID, text); err != nil {
		log.Printf("Could not update comment: %s", err.Error())
		return err
	}

	fmt.Println("Comment updated")
	return nil
}
