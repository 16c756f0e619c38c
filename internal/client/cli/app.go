// Package cli implements the interactive picshare client: a line-based
// REPL over the application services.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dkarpov/picshare/internal/client/api"
	"github.com/dkarpov/picshare/internal/client/config"
	"github.com/dkarpov/picshare/internal/client/models"
	"github.com/dkarpov/picshare/internal/client/services"
	"github.com/dkarpov/picshare/internal/client/session"
	"github.com/dkarpov/picshare/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config   *config.Config
	auth     services.AuthService
	pictures services.PictureService
	comments services.CommentService
	log      logging.Logger
	user     *models.User
	reader   *bufio.Reader
}

func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := session.Open(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "initializing local database", "path", c.DatabasePath, "err", err)
		return nil, err
	}

	store := session.NewSQLiteStore(db, logger)
	apiClient := api.NewHTTPClient(c.BaseURL, c.RequestTimeout, logger)

	return &App{
		config:   c,
		auth:     services.NewAuthService(apiClient, store, logger),
		pictures: services.NewPictureService(apiClient, store, logger),
		comments: services.NewCommentService(apiClient, store, logger),
		log:      logger,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

// Run verifies any persisted session first and only then hands control to
// the REPL. A stale or unverifiable token never grants access.
func (a *App) Run(ctx context.Context) {
	if a.auth.StartupCheck(ctx) {
		user, err := a.auth.RetrieveUser(ctx)
		if err != nil {
			log.Printf("Could not load account details: %s", err.Error())
		} else {
			a.user = user
			log.Printf("Welcome back, %s!", user.Username)
		}
	}

	log.Println("picshare CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) getStatus() string {
	if a.user == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.user.Username)
}
