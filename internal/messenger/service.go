package messenger

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pagebot/messenger-relay/internal/ai"
)

type service struct {
	repo     Repo
	ai       ai.AI
	outbound Outbound
	log      *zap.SugaredLogger
}

func NewService(repo Repo, aiClient ai.AI, outbound Outbound, log *zap.SugaredLogger) Service {
	return &service{
		repo:     repo,
		ai:       aiClient,
		outbound: outbound,
		log:      log,
	}
}

// HandleIncoming runs the pipeline for one webhook message: log it, build a
// bounded context, generate a reply, dispatch it. The history snapshot is
// taken before the append so the new message never shows up in its own
// context.
func (s *service) HandleIncoming(ctx context.Context, senderID, text string) error {
	s.log.Infow("incoming message", "sender", senderID, "text", text)

	user, err := s.repo.EnsureUser(ctx, senderID)
	if err != nil {
		return fmt.Errorf("ensure user: %w", err)
	}

	recent, err := s.repo.RecentByUser(ctx, user.ID, historyLimit)
	if err != nil {
		s.log.Warnw("history fetch failed, proceeding without context",
			"sender", senderID, "err", err,
		)
		recent = nil
	}

	if _, err := s.repo.Append(ctx, user.ID, text, DirectionIncoming, StatusSent); err != nil {
		return fmt.Errorf("log incoming: %w", err)
	}

	// recent is newest-first, the prompt wants chronological order
	for i, j := 0, len(recent)-1; i < j; i, j = i+1, j-1 {
		recent[i], recent[j] = recent[j], recent[i]
	}

	reply, err := s.ai.GetReply(ctx, BuildPrompt(recent, text))
	if err != nil {
		s.log.Warnw("generation failed, using fallback", "sender", senderID, "err", err)
		reply = FallbackReply(text)
	}

	return s.SendMessage(ctx, senderID, reply)
}

// SendMessage dispatches text to a recipient and records the outgoing entry
// only after the platform confirmed the send. Shared by the webhook pipeline
// and the manual send endpoint.
func (s *service) SendMessage(ctx context.Context, recipientID, text string) error {
	if err := s.outbound.Send(ctx, recipientID, text); err != nil {
		return err
	}

	user, err := s.repo.EnsureUser(ctx, recipientID)
	if err != nil {
		return fmt.Errorf("ensure user: %w", err)
	}

	if _, err := s.repo.Append(ctx, user.ID, text, DirectionOutgoing, StatusSent); err != nil {
		return fmt.Errorf("log outgoing: %w", err)
	}

	return nil
}
