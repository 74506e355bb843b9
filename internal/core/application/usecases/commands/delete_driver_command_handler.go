package commands

import "context"

type DeleteDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

func NewDeleteDriverCommandHandler(uowFactory DriverUoWFactory) DeleteDriverCommandHandler {
	return DeleteDriverCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the driver; a driver of another organization is reported as not found.
func (h *DeleteDriverCommandHandler) Handle(ctx context.Context, cmd DeleteDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create(cmd.Scope())
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.DriverRepository().Delete(ctx, cmd.DriverID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
