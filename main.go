package main

import (
	"context"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/yt-batch/internal/batch"
	"github.com/ytget/yt-batch/internal/config"
	"github.com/ytget/yt-batch/internal/download"
	"github.com/ytget/yt-batch/internal/logging"
	"github.com/ytget/yt-batch/internal/platform"
	"github.com/ytget/yt-batch/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.yt-batch"
	AppName = "YT to me"
)

func main() {
	logger, err := logging.New(logging.Options{Level: "info"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	logger.Info("starting", zap.String("app", AppName), zap.String("version", version))

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	settings := config.NewSettings(myApp)

	appDir, err := platform.ExecutableDir()
	if err != nil {
		logger.Warn("executable directory unavailable, using working directory", zap.Error(err))
		appDir = "."
	}

	locator := platform.NewFFmpegLocator(appDir, download.FetchFFmpeg, logger)
	extractor := download.NewYTDLPExtractor(logger)
	worker := download.NewWorker(extractor, locator, settings.DownloadOptions, logger)

	rootUI := ui.NewRootUI(myWindow, myApp, settings, logger)
	controller := batch.NewController(worker, rootUI, logger)
	rootUI.SetStarter(controller)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go controller.Run(ctx)

	myWindow.SetOnClosed(cancel)
	myWindow.ShowAndRun()
}
