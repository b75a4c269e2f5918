package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	httpadapter "svw.info/crossword/internal/adapters/http"
	"svw.info/crossword/internal/hint"
	"svw.info/crossword/internal/infrastructure/storage"
	"svw.info/crossword/internal/usecase"
	"svw.info/crossword/internal/validator"
	"svw.info/crossword/web"
)

func newServeCommand() *cobra.Command {
	var (
		addr       string
		dataDir    string
		solverKind string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web UI and JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr, dataDir, solverKind)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&dataDir, "data", "./data", "puzzle save directory")
	cmd.Flags().StringVar(&solverKind, "solver", "recursive", "search engine: recursive|iterative")
	return cmd
}

func runServe(addr, dataDir, solverKind string) error {
	uc := usecase.NewService(newSolver(solverKind), validator.New(), hint.NewForced(), storage.NewFS(dataDir))
	h := httpadapter.New(uc)

	gin.SetMode(gin.ReleaseMode)
	e := gin.New()
	e.Use(gin.Recovery(), httpadapter.RequestLogger())
	e.SetHTMLTemplate(web.Templates())
	e.StaticFS("/static", web.StaticFS())
	e.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.tmpl", gin.H{})
	})
	h.Register(e)

	log.Info().
		Str("addr", addr).
		Str("data", dataDir).
		Str("solver", solverKind).
		Msg("listening")
	return e.Run(addr)
}
