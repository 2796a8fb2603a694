package scheduler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"

	"sales360_backend/internal/email"
	"sales360_backend/internal/leads/service"
	"sales360_backend/internal/whatsapp"
	"sales360_backend/platform/config"
	"sales360_backend/platform/logger"
)

// sweepFanout caps how many evaluate tasks a sweep enqueues concurrently.
const sweepFanout = 8

type Worker struct {
	server   *asynq.Server
	mux      *asynq.ServeMux
	client   *Client
	svc      *service.Service
	whatsapp *whatsapp.Client
	email    email.Sender
	log      *logger.Logger
}

func NewWorker(cfg config.SchedulerConfig, client *Client, svc *service.Service, wa *whatsapp.Client, sender email.Sender, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
	})

	mux := asynq.NewServeMux()
	w := &Worker{
		server:   server,
		mux:      mux,
		client:   client,
		svc:      svc,
		whatsapp: wa,
		email:    sender,
		log:      log,
	}

	mux.HandleFunc(TaskCadenceSweep, w.handleCadenceSweep)
	mux.HandleFunc(TaskCadenceEvaluate, w.handleCadenceEvaluate)

	return w, nil
}

// handleCadenceSweep fans one evaluate task out per active lead.
func (w *Worker) handleCadenceSweep(ctx context.Context, task *asynq.Task) error {
	ids, err := w.svc.ActiveLeadIDs(ctx)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(sweepFanout)
	for _, id := range ids {
		g.Go(func() error {
			return w.client.ScheduleCadenceEvaluation(gctx, id, time.Now())
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	w.log.Info("cadence sweep enqueued", "leads", len(ids))
	return nil
}

// handleCadenceEvaluate runs the pipeline for one lead and delivers the
// decided action on the suggested channel.
func (w *Worker) handleCadenceEvaluate(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseCadenceEvaluatePayload(task)
	if err != nil {
		return err
	}

	leadID, err := uuid.Parse(payload.LeadID)
	if err != nil {
		return err
	}

	result, err := w.svc.EvaluateStored(ctx, leadID)
	if err != nil {
		return err
	}

	if !result.Cadence.HasAction() {
		return nil
	}

	message := result.Action.Message
	if message == "" {
		message = result.Action.Script
	}
	if message == "" {
		return nil
	}

	lead := result.Lead.Lead
	channel := ""
	switch {
	case strings.Contains(result.Action.ChannelSuggestion, "whatsapp") && w.whatsapp != nil && lead.Phone != "":
		if err := w.whatsapp.SendMessage(ctx, lead.Phone, message); err != nil {
			return err
		}
		channel = "whatsapp"
	case lead.Email != "":
		if err := w.email.SendCadenceEmail(ctx, lead.Email, emailSubject(result.Action.MessageType), message); err != nil {
			return err
		}
		channel = "email"
	default:
		w.log.Warn("cadence action has no deliverable channel", "leadId", leadID, "agent", result.Action.Agent)
		return nil
	}

	return w.svc.RecordCadenceTouch(ctx, leadID, result.Cadence, result.Action, channel)
}

func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("cadence worker stopped", "error", err)
	}
}

// RunSweepLoop periodically enqueues a cadence sweep until the context ends.
func (w *Worker) RunSweepLoop(ctx context.Context, interval time.Duration) {
	if w == nil || w.client == nil || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.EnqueueCadenceSweep(ctx); err != nil {
				w.log.Error("failed to enqueue cadence sweep", "error", err)
			}
		}
	}
}

func emailSubject(messageType string) string {
	switch {
	case strings.HasPrefix(messageType, "appointment"):
		return "Your appointment with our team"
	case strings.HasPrefix(messageType, "post_call"):
		return "Following up on our call"
	case strings.HasPrefix(messageType, "reengagement"):
		return "Still thinking it over?"
	case messageType == "first_touch":
		return "Thanks for reaching out"
	default:
		return "An update from our team"
	}
}
