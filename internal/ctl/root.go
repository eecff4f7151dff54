// Package ctl implements imagevaultctl, the operator CLI. Asset commands talk
// to a running server over gRPC; migrate opens the configured catalog
// backend directly.
package ctl

import (
	"context"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/dmitrijs2005/imagevault/internal/logging"
	"github.com/dmitrijs2005/imagevault/internal/server"
	"github.com/dmitrijs2005/imagevault/internal/server/api"
	"github.com/dmitrijs2005/imagevault/internal/server/config"
	gs "github.com/dmitrijs2005/imagevault/internal/server/grpc"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
)

// AssetClient is the subset of *gs.Client used by the commands.
type AssetClient interface {
	ReserveUpload(ctx context.Context, req *api.ReserveUploadRequest, opts ...grpc.CallOption) (*api.ReserveUploadResponse, error)
	ConfirmUpload(ctx context.Context, req *api.ConfirmUploadRequest, opts ...grpc.CallOption) (*api.ConfirmUploadResponse, error)
	ListAssets(ctx context.Context, req *api.ListAssetsRequest, opts ...grpc.CallOption) (*api.ListAssetsResponse, error)
	GetDownload(ctx context.Context, req *api.GetDownloadRequest, opts ...grpc.CallOption) (*api.GetDownloadResponse, error)
	DeleteAsset(ctx context.Context, req *api.DeleteAssetRequest, opts ...grpc.CallOption) (*api.DeleteAssetResponse, error)
	Close() error
}

// App carries the global flags and the collaborators shared by every
// subcommand.
type App struct {
	Server     string
	Timeout    time.Duration
	ConfigPath string

	Out     io.Writer
	HTTP    *http.Client
	Dial    func(target string) (AssetClient, error)
	Migrate func(ctx context.Context, configPath string) error
}

// NewApp returns an App wired to a real gRPC connection and the server's
// migration path.
func NewApp() *App {
	return &App{
		Out:     os.Stdout,
		HTTP:    http.DefaultClient,
		Dial:    dialGRPC,
		Migrate: runMigrations,
	}
}

func dialGRPC(target string) (AssetClient, error) {
	return gs.NewClient(target)
}

func runMigrations(ctx context.Context, configPath string) error {
	var args []string
	if configPath != "" {
		args = []string{"--config", configPath}
	}
	cfg, err := config.Load(args)
	if err != nil {
		return err
	}

	logger := logging.NewJSON(os.Stderr, cfg.LogLevel)
	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	return app.Migrate(ctx)
}

// withClient dials the server, bounds the call by the global timeout and
// runs fn.
func (a *App) withClient(cmd *cobra.Command, fn func(ctx context.Context, c AssetClient) error) error {
	c, err := a.Dial(a.Server)
	if err != nil {
		return err
	}
	defer c.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), a.Timeout)
	defer cancel()
	return fn(ctx, c)
}

// NewRootCmd builds the command tree over app.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:          "imagevaultctl",
		Short:        "Operate an imagevault deployment",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&app.Server, "server", "s", "localhost:50051", "imagevault gRPC address")
	root.PersistentFlags().DurationVar(&app.Timeout, "timeout", 30*time.Second, "per-command deadline")
	root.PersistentFlags().StringVarP(&app.ConfigPath, "config", "c", "", "server config file (migrate only)")

	root.AddCommand(
		newMigrateCmd(app),
		newListCmd(app),
		newDownloadURLCmd(app),
		newDownloadCmd(app),
		newDeleteCmd(app),
		newUploadCmd(app),
	)
	root.SetOut(app.Out)
	return root
}

// Execute runs imagevaultctl with os.Args.
func Execute() {
	if err := NewRootCmd(NewApp()).Execute(); err != nil {
		os.Exit(1)
	}
}
