package cli

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/dkarpov/picshare/internal/client/models"
	"github.com/dkarpov/picshare/internal/filex"
)

// Photos lists the caller's own pictures, newest first. The ordering is a
// display choice; the endpoint guarantees none.
func (a *App) Photos(ctx context.Context) error {
	pictures, err := a.pictures.List(ctx)
	if err != nil {
		log.Printf("Could not load photos: %s", err.Error())
		return err
	}
	printPictureList(pictures)
	return nil
}

// Feed lists the public feed, newest first.
func (a *App) Feed(ctx context.Context) error {
	pictures, err := a.pictures.Feed(ctx)
	if err != nil {
		log.Printf("Could not load the feed: %s", err.Error())
		return err
	}
	printPictureList(pictures)
	return nil
}

func printPictureList(pictures []models.Picture) {
	if len(pictures) == 0 {
		fmt.Println("No photos yet")
		return
	}

	sort.Slice(pictures, func(i, j int) bool {
		return pictures[i].UploadedAt.After(pictures[j].UploadedAt)
	})

	for _, p := range pictures {
		author := ""
		if p.Author != "" {
			author = " by " + p.Author
		}
		fmt.Printf("%s  %s  %dx%d  %s  %s%s\n",
			p.PictureID, p.FileName, p.Width, p.Height,
			formatSize(p.FileSize), formatAge(p.UploadedAt), author)
	}
}

// Show fetches a single picture with its full-resolution data and saves
// the image to ./download/<fileName>.
func (a *App) Show(ctx context.Context, pictureID string) error {
	picture, err := a.pictures.Get(ctx, pictureID)
	if err != nil {
		log.Printf("Could not load picture: %s", err.Error())
		return err
	}

	fmt.Printf("%s  %dx%d  %s  uploaded %s\n",
		picture.FileName, picture.Width, picture.Height,
		formatSize(picture.FileSize), formatAge(picture.UploadedAt))
	if picture.Description != "" {
		fmt.Println(picture.Description)
	}

	if picture.ImageData == "" {
		return nil
	}

	data, err := base64.StdEncoding.DecodeString(picture.ImageData)
	if err != nil {
		log.Printf("Could not decode image data: %s", err.Error())
		return err
	}

	dir, err := filex.EnsureSubDir("download")
	if err != nil {
		return err
	}

	outputFile := filepath.Join(dir, filepath.Base(picture.FileName))
	if err := os.WriteFile(outputFile, data, 0o660); err != nil {
		log.Printf("Could not save image: %s", err.Error())
		return err
	}

	log.Printf("Image saved to: %s", outputFile)
	return nil
}

// Upload prompts for a local file path and an optional description and
// posts the photo.
func (a *App) Upload(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Enter image file path", os.Stdout)
	if err != nil {
		return err
	}

	description, err := getSimpleText(a.reader, "Enter description (optional)", os.Stdout)
	if err != nil {
		return err
	}

	picture, err := a.pictures.Upload(ctx, path, description)
	if err != nil {
		log.Printf("Upload failed: %s", err.Error())
		return err
	}

	if picture != nil {
		fmt.Printf("Uploaded: %s\n", picture.PictureID)
	} else {
		fmt.Println("Photo uploaded successfully!")
	}
	return nil
}

// DeletePhoto removes one of the caller's pictures.
func (a *App) DeletePhoto(ctx context.Context, pictureID string) error {
	if err := a.pictures.Delete(ctx, pictureID); err != nil {
		log.Printf("Could not delete photo: %s", err.Error())
		return err
	}
	fmt.Println("Photo deleted")
	return nil
}
