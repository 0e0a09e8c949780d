package commands

import (
	"context"

	"dispatch/internal/core/domain/model/calendar"
)

// ToggleBlackoutCommandHandler applies operator blackout toggles to the
// calendar. Setting a blackout on a day that already has one replaces it;
// lifting a blackout from an open day is a no-op.
type ToggleBlackoutCommandHandler struct {
	uowFactory BlackoutUoWFactory
}

// NewToggleBlackoutCommandHandler creates a handler for blackout toggles.
func NewToggleBlackoutCommandHandler(uowFactory BlackoutUoWFactory) ToggleBlackoutCommandHandler {
	return ToggleBlackoutCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the blackout toggle command.
func (h *ToggleBlackoutCommandHandler) Handle(ctx context.Context, cmd ToggleBlackoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	blackoutRepo := uow.BlackoutRepository()
	if cmd.Enabled() {
		blackout, err := calendar.NewBlackout(cmd.Date(), cmd.Reason(), cmd.Slots())
		if err != nil {
			return err
		}
		if err = blackoutRepo.Upsert(ctx, blackout); err != nil {
			return err
		}
	} else {
		if err := blackoutRepo.Remove(ctx, cmd.Date()); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
