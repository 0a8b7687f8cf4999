package batch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ytget/yt-batch/internal/download"
	"github.com/ytget/yt-batch/internal/logging"
	"github.com/ytget/yt-batch/internal/model"
	"github.com/ytget/yt-batch/internal/platform"
)

// EventBufferSize bounds the controller event channel
const EventBufferSize = 64

// Start rejections
var (
	ErrNoOutputDir = errors.New("no download directory selected")
	ErrNoURLs      = errors.New("no URLs to download")
	ErrBusy        = errors.New("a batch is already running")
	ErrStopped     = errors.New("batch controller stopped")
)

var errNoResult = errors.New("download produced no result")

// Processor downloads a single queue item
type Processor interface {
	Process(ctx context.Context, item model.QueueItem, outputDir string, reporter download.Reporter) (*model.DownloadResult, error)
}

type event interface {
	isEvent()
}

type startRequest struct {
	items     []model.QueueItem
	outputDir string
	reply     chan error
}

type itemProgress struct {
	itemID   string
	progress download.Progress
}

type itemFinished struct {
	itemID string
	result *model.DownloadResult
	err    error
}

type itemAcknowledged struct {
	itemID string
}

func (startRequest) isEvent()     {}
func (itemProgress) isEvent()     {}
func (itemFinished) isEvent()     {}
func (itemAcknowledged) isEvent() {}

// Controller owns the batch state and drains it one worker at a time
type Controller struct {
	processor Processor
	view      View
	logger    *zap.Logger

	events chan event
	done   chan struct{}

	// state and awaitingAck are read and written only by the Run goroutine
	state       State
	awaitingAck string // id of a failed item whose report is still open
}

// NewController creates a controller; Run must be started before Start is used
func NewController(processor Processor, view View, logger *zap.Logger) *Controller {
	return &Controller{
		processor: processor,
		view:      view,
		logger:    logging.NewComponentLogger(logger, "batch"),
		events:    make(chan event, EventBufferSize),
		done:      make(chan struct{}),
		state:     IdleState(),
	}
}

// Run processes events until ctx is cancelled. Cancelling ctx also cancels the
// in-flight download.
func (c *Controller) Run(ctx context.Context) {
	defer close(c.done)
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-c.events:
			c.handle(ctx, ev)
		}
	}
}

// Start validates the input and begins a batch. Rejected input leaves the
// controller untouched.
func (c *Controller) Start(items []model.QueueItem, outputDir string) error {
	outputDir = strings.TrimSpace(outputDir)
	if outputDir == "" {
		return ErrNoOutputDir
	}
	if len(items) == 0 {
		return ErrNoURLs
	}

	req := startRequest{items: items, outputDir: outputDir, reply: make(chan error, 1)}
	select {
	case c.events <- req:
	case <-c.done:
		return ErrStopped
	}

	select {
	case err := <-req.reply:
		return err
	case <-c.done:
		return ErrStopped
	}
}

func (c *Controller) handle(ctx context.Context, ev event) {
	switch e := ev.(type) {
	case startRequest:
		e.reply <- c.handleStart(ctx, e)
	case itemProgress:
		c.handleProgress(e)
	case itemFinished:
		c.handleFinished(ctx, e)
	case itemAcknowledged:
		c.handleAcknowledged(ctx, e)
	}
}

func (c *Controller) handleStart(ctx context.Context, req startRequest) error {
	if c.state.Phase.IsRunning() {
		return ErrBusy
	}

	if err := platform.CreateDirectoryIfNotExists(req.outputDir); err != nil {
		return fmt.Errorf("create download directory: %w", err)
	}

	c.state = Begin(uuid.NewString(), req.items, req.outputDir)
	c.logger.Info("batch started",
		zap.String("batch_id", c.state.BatchID),
		zap.Int("total", c.state.Total),
		zap.String("output_dir", req.outputDir))

	c.view.ClearDoneMarkers()
	c.view.SetControlsEnabled(false)
	c.drainNext(ctx)
	return nil
}

// drainNext starts the next item or finishes the batch
func (c *Controller) drainNext(ctx context.Context) {
	next, item, ok := c.state.Next()
	c.state = next

	if !ok {
		c.view.SetStatus(Status{Kind: StatusAllComplete, Total: next.Total})
		c.view.SetProgress(0)
		c.view.SetControlsEnabled(true)
		c.view.BatchFinished(Summary{
			BatchID:   next.BatchID,
			OutputDir: next.OutputDir,
			Total:     next.Total,
			Failed:    next.Failed,
		})
		c.logger.Info("batch finished",
			zap.String("batch_id", next.BatchID),
			zap.Int("total", next.Total),
			zap.Int("failed", next.Failed))
		return
	}

	c.view.SetStatus(Status{Kind: StatusPreparing, Index: next.Index(), Total: next.Total})
	c.view.SetProgress(0)
	c.dispatch(ctx, item, next.OutputDir)
}

// dispatch runs one worker. The deferred post guarantees exactly one
// itemFinished per dispatch, panics included.
func (c *Controller) dispatch(ctx context.Context, item model.QueueItem, outputDir string) {
	reporter := download.ReporterFunc(func(p download.Progress) {
		c.post(ctx, itemProgress{itemID: item.ID, progress: p}, p.Status == download.ProgressDownloading)
	})

	go func() {
		var (
			result *model.DownloadResult
			err    error
		)
		defer func() {
			if r := recover(); r != nil {
				result = nil
				err = fmt.Errorf("download worker panic: %v", r)
			}
			c.post(ctx, itemFinished{itemID: item.ID, result: result, err: err}, false)
		}()

		result, err = c.processor.Process(ctx, item, outputDir, reporter)
	}()
}

// post delivers ev to the loop. Droppable events are discarded when the
// channel is full.
func (c *Controller) post(ctx context.Context, ev event, droppable bool) {
	if droppable {
		select {
		case c.events <- ev:
		default:
		}
		return
	}

	select {
	case c.events <- ev:
	case <-ctx.Done():
	case <-c.done:
	}
}

func (c *Controller) handleProgress(e itemProgress) {
	if !c.state.IsCurrent(e.itemID) {
		return
	}

	p := e.progress
	switch p.Status {
	case download.ProgressDownloading:
		percent := p.Percent()
		c.view.SetProgress(percent)
		c.view.SetStatus(Status{
			Kind:    StatusDownloading,
			Index:   c.state.Index(),
			Total:   c.state.Total,
			Percent: percent,
			Speed:   p.Speed,
		})
	case download.ProgressFinished:
		c.view.SetStatus(Status{Kind: StatusProcessing, Index: c.state.Index(), Total: c.state.Total})
		c.view.SetProgress(100)
	case download.ProgressError:
		c.view.SetStatus(Status{Kind: StatusDownloadError, Index: c.state.Index(), Total: c.state.Total})
	}
}

func (c *Controller) handleFinished(ctx context.Context, e itemFinished) {
	if !c.state.IsCurrent(e.itemID) {
		c.logger.Warn("completion for unknown item ignored", zap.String("item_id", e.itemID))
		return
	}

	item := *c.state.Current
	logger := c.logger.With(
		zap.String("batch_id", c.state.BatchID),
		zap.String("item_id", item.ID),
		zap.String("url", item.URL))

	err := e.err
	outcome := model.ItemOutcomeFailed
	if err == nil {
		outcome = e.result.Outcome()
		if outcome.IsFailure() {
			err = errNoResult
		}
	}

	switch outcome {
	case model.ItemOutcomeFailed:
		logger.Warn("item failed", zap.Error(err))
		c.awaitingAck = item.ID
		c.view.ShowFailure(download.Classify(err), c.acknowledger(ctx, item.ID))
		return
	case model.ItemOutcomeRenamed:
		logger.Info("item done", zap.String("path", e.result.TargetPath))
		c.view.SetStatus(Status{Kind: StatusItemRenamed, Index: c.state.Index(), Total: c.state.Total, FileName: e.result.FileName()})
	default:
		logger.Info("item done without rename")
		c.view.SetStatus(Status{Kind: StatusItemComplete, Index: c.state.Index(), Total: c.state.Total})
	}

	c.advance(ctx, false)
}

// acknowledger returns the callback that resumes the batch after a failure
// report. It may be called from any goroutine, including from inside
// ShowFailure; extra calls are ignored.
func (c *Controller) acknowledger(ctx context.Context, itemID string) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			go c.post(ctx, itemAcknowledged{itemID: itemID}, false)
		})
	}
}

func (c *Controller) handleAcknowledged(ctx context.Context, e itemAcknowledged) {
	if c.awaitingAck == "" || c.awaitingAck != e.itemID || !c.state.IsCurrent(e.itemID) {
		c.logger.Warn("acknowledgement for unknown item ignored", zap.String("item_id", e.itemID))
		return
	}
	c.awaitingAck = ""
	c.advance(ctx, true)
}

// advance marks the current line done, counts the item and starts the next one
func (c *Controller) advance(ctx context.Context, failed bool) {
	c.view.MarkLineDone(c.state.Current.Line)
	c.state = c.state.Complete(failed)
	c.drainNext(ctx)
}
