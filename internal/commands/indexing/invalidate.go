package indexing

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-storefront/internal/commands"
	"github.com/goliatone/go-storefront/pkg/interfaces"
)

const invalidateMessageType = "storefront.content.invalidate"

// ContentInvalidator drops cached content-service reads.
type ContentInvalidator interface {
	InvalidateAll(ctx context.Context) error
}

// InvalidateContentCommand flushes the content gateway's read cache, forcing
// the next read of every entry to hit the origin. Publish webhooks dispatch
// it after content changes.
type InvalidateContentCommand struct {
	Reason string `json:"reason"`
}

// Type implements command.Message.
func (InvalidateContentCommand) Type() string { return invalidateMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m InvalidateContentCommand) Validate() error {
	errs := validation.Errors{}
	if m.Reason == "" {
		errs["reason"] = validation.NewError("storefront.content.invalidate.reason_required", "reason is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// InvalidateContentHandler flushes the gateway cache.
type InvalidateContentHandler struct {
	inner *commands.Handler[InvalidateContentCommand]
}

// NewInvalidateContentHandler wires the handler to the gateway cache.
func NewInvalidateContentHandler(invalidator ContentInvalidator, logger interfaces.Logger, opts ...commands.HandlerOption[InvalidateContentCommand]) *InvalidateContentHandler {
	exec := func(ctx context.Context, msg InvalidateContentCommand) error {
		if err := invalidator.InvalidateAll(ctx); err != nil {
			return err
		}
		logger.Info("content.invalidate.complete", "reason", msg.Reason)
		return nil
	}

	handlerOpts := []commands.HandlerOption[InvalidateContentCommand]{
		commands.WithLogger[InvalidateContentCommand](logger),
		commands.WithOperation[InvalidateContentCommand]("content.invalidate"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &InvalidateContentHandler{
		inner: commands.NewHandler[InvalidateContentCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[InvalidateContentCommand].Execute.
func (h *InvalidateContentHandler) Execute(ctx context.Context, msg InvalidateContentCommand) error {
	return h.inner.Execute(ctx, msg)
}
