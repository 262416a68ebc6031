// Package http exposes the packing operations over a JSON API.
// Handlers translate requests into commands and queries and map the
// domain error taxonomy onto HTTP status codes.
package http

import (
	"net/http"

	"packing/internal/core/application/usecases/commands"
	"packing/internal/core/application/usecases/queries"
	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/errs"
	"packing/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP surface for packing sessions.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	startPackHandler          commands.StartPackCommandHandler
	addBoxHandler             commands.AddBoxCommandHandler
	removeBoxHandler          commands.RemoveBoxCommandHandler
	duplicateBoxHandler       commands.DuplicateBoxCommandHandler
	assignOneHandler          commands.AssignOneCommandHandler
	assignAllRemainingHandler commands.AssignAllRemainingCommandHandler
	setQtyHandler             commands.SetQtyCommandHandler
	removeItemHandler         commands.RemoveItemCommandHandler
	removeAllPackedHandler    commands.RemoveAllPackedCommandHandler
	setBoxWeightHandler       commands.SetBoxWeightCommandHandler
	completePackHandler       commands.CompletePackCommandHandler
	reopenPackHandler         commands.ReopenPackCommandHandler

	// Query handlers
	getPackSnapshotHandler queries.GetPackSnapshotQueryHandler
	getCartonsHandler      queries.GetCartonsQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	startPackHandler commands.StartPackCommandHandler,
	addBoxHandler commands.AddBoxCommandHandler,
	removeBoxHandler commands.RemoveBoxCommandHandler,
	duplicateBoxHandler commands.DuplicateBoxCommandHandler,
	assignOneHandler commands.AssignOneCommandHandler,
	assignAllRemainingHandler commands.AssignAllRemainingCommandHandler,
	setQtyHandler commands.SetQtyCommandHandler,
	removeItemHandler commands.RemoveItemCommandHandler,
	removeAllPackedHandler commands.RemoveAllPackedCommandHandler,
	setBoxWeightHandler commands.SetBoxWeightCommandHandler,
	completePackHandler commands.CompletePackCommandHandler,
	reopenPackHandler commands.ReopenPackCommandHandler,
	getPackSnapshotHandler queries.GetPackSnapshotQueryHandler,
	getCartonsHandler queries.GetCartonsQueryHandler,
) *Server {
	return &Server{
		startPackHandler:          startPackHandler,
		addBoxHandler:             addBoxHandler,
		removeBoxHandler:          removeBoxHandler,
		duplicateBoxHandler:       duplicateBoxHandler,
		assignOneHandler:          assignOneHandler,
		assignAllRemainingHandler: assignAllRemainingHandler,
		setQtyHandler:             setQtyHandler,
		removeItemHandler:         removeItemHandler,
		removeAllPackedHandler:    removeAllPackedHandler,
		setBoxWeightHandler:       setBoxWeightHandler,
		completePackHandler:       completePackHandler,
		reopenPackHandler:         reopenPackHandler,
		getPackSnapshotHandler:    getPackSnapshotHandler,
		getCartonsHandler:         getCartonsHandler,
	}
}

// RegisterRoutes attaches all packing routes under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/cartons", s.GetCartons)

	api.POST("/packs", s.StartPack)
	api.GET("/packs/:packID", s.GetPackSnapshot)
	api.POST("/packs/:packID/complete", s.CompletePack)
	api.POST("/packs/:packID/reopen", s.ReopenPack)

	api.POST("/packs/:packID/boxes", s.AddBox)
	api.DELETE("/packs/:packID/boxes/:boxID", s.RemoveBox)
	api.POST("/packs/:packID/boxes/:boxID/duplicate", s.DuplicateBox)
	api.PUT("/packs/:packID/boxes/:boxID/weight", s.SetBoxWeight)

	api.POST("/packs/:packID/boxes/:boxID/items", s.AssignOne)
	api.POST("/packs/:packID/boxes/:boxID/items/assign-all", s.AssignAllRemaining)
	api.PUT("/packs/:packID/boxes/:boxID/items/:lineID", s.SetQty)
	api.DELETE("/packs/:packID/boxes/:boxID/items/:lineID", s.RemoveItem)
	api.POST("/packs/:packID/boxes/:boxID/items/:lineID/remove-all", s.RemoveAllPacked)
}

// StartPackRequest is the body for POST /packs.
type StartPackRequest struct {
	OrderNo  string `json:"order_no"`
	PackedBy string `json:"packed_by"`
}

// StartPackResponse returns the pack ready for packing.
type StartPackResponse struct {
	PackID kernel.UUID `json:"pack_id"`
}

// StartPack handles POST /api/v1/packs. Imports the order from the order
// entry system on first sight, then returns the existing or new pack.
func (s *Server) StartPack(ctx echo.Context) error {
	var request StartPackRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewStartPackCommand(request.OrderNo, request.PackedBy)
	if err != nil {
		return respondError(ctx, err)
	}

	packID, err := s.startPackHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		metrics.RecordPackOperation("start_pack", "error")
		return respondError(ctx, err)
	}

	metrics.RecordPackOperation("start_pack", "ok")
	return ctx.JSON(http.StatusOK, StartPackResponse{PackID: packID})
}

// GetPackSnapshot handles GET /api/v1/packs/:packID.
func (s *Server) GetPackSnapshot(ctx echo.Context) error {
	packID, err := pathUUID(ctx, "packID")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetPackSnapshotQuery(packID)
	if err != nil {
		return respondError(ctx, err)
	}

	snapshot, err := s.getPackSnapshotHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, snapshot)
}

// GetCartons handles GET /api/v1/cartons.
func (s *Server) GetCartons(ctx echo.Context) error {
	cartons, err := s.getCartonsHandler.Handle(ctx.Request().Context(), queries.NewGetCartonsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, cartons)
}

// AddBoxRequest is the body for POST /packs/:packID/boxes. Either a carton
// type or all three custom dimensions must be given, never both.
type AddBoxRequest struct {
	CartonTypeID *kernel.UUID `json:"carton_type_id"`
	LengthIn     *float64     `json:"length_in"`
	WidthIn      *float64     `json:"width_in"`
	HeightIn     *float64     `json:"height_in"`
	MaxWeightLb  int          `json:"max_weight_lb"`
}

// BoxResponse returns the identifier of a created box.
type BoxResponse struct {
	BoxID kernel.UUID `json:"box_id"`
}

// AddBox handles POST /api/v1/packs/:packID/boxes.
func (s *Server) AddBox(ctx echo.Context) error {
	packID, err := pathUUID(ctx, "packID")
	if err != nil {
		return respondError(ctx, err)
	}

	var request AddBoxRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddBoxCommand(
		packID,
		request.CartonTypeID,
		request.LengthIn, request.WidthIn, request.HeightIn,
		request.MaxWeightLb,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	boxID, err := s.addBoxHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		metrics.RecordPackOperation("add_box", "error")
		return respondError(ctx, err)
	}

	metrics.RecordPackOperation("add_box", "ok")
	return ctx.JSON(http.StatusCreated, BoxResponse{BoxID: boxID})
}

// RemoveBox handles DELETE /api/v1/packs/:packID/boxes/:boxID.
// Only empty boxes can be removed.
func (s *Server) RemoveBox(ctx echo.Context) error {
	packID, boxID, err := pathPackAndBox(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveBoxCommand(packID, boxID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.removeBoxHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		metrics.RecordPackOperation("remove_box", "error")
		return respondError(ctx, err)
	}

	metrics.RecordPackOperation("remove_box", "ok")
	return ctx.NoContent(http.StatusNoContent)
}

// DuplicateBox handles POST /api/v1/packs/:packID/boxes/:boxID/duplicate.
// Fails atomically with the full offender list when contents cannot be copied.
func (s *Server) DuplicateBox(ctx echo.Context) error {
	packID, boxID, err := pathPackAndBox(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDuplicateBoxCommand(packID, boxID)
	if err != nil {
		return respondError(ctx, err)
	}

	newBoxID, err := s.duplicateBoxHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		metrics.RecordPackOperation("duplicate_box", "error")
		return respondError(ctx, err)
	}

	metrics.RecordPackOperation("duplicate_box", "ok")
	return ctx.JSON(http.StatusCreated, BoxResponse{BoxID: newBoxID})
}

// AssignItemRequest is the body for POST /packs/:packID/boxes/:boxID/items
// and its assign-all variant.
type AssignItemRequest struct {
	OrderLineID kernel.UUID `json:"order_line_id"`
}

// AssignOne handles POST /api/v1/packs/:packID/boxes/:boxID/items.
// Moves exactly one unit of the line into the box.
func (s *Server) AssignOne(ctx echo.Context) error {
	packID, boxID, err := pathPackAndBox(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request AssignItemRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAssignOneCommand(packID, boxID, request.OrderLineID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.assignOneHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		metrics.RecordPackOperation("assign_one", "error")
		return respondError(ctx, err)
	}

	metrics.RecordPackOperation("assign_one", "ok")
	return ctx.NoContent(http.StatusNoContent)
}

// AssignAllRemaining handles POST /api/v1/packs/:packID/boxes/:boxID/items/assign-all.
func (s *Server) AssignAllRemaining(ctx echo.Context) error {
	packID, boxID, err := pathPackAndBox(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request AssignItemRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAssignAllRemainingCommand(packID, boxID, request.OrderLineID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.assignAllRemainingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		metrics.RecordPackOperation("assign_all_remaining", "error")
		return respondError(ctx, err)
	}

	metrics.RecordPackOperation("assign_all_remaining", "ok")
	return ctx.NoContent(http.StatusNoContent)
}

// SetQtyRequest is the body for PUT /packs/:packID/boxes/:boxID/items/:lineID.
type SetQtyRequest struct {
	Qty int `json:"qty"`
}

// SetQty handles PUT /api/v1/packs/:packID/boxes/:boxID/items/:lineID.
// Replaces the line's quantity in the box; zero clears it.
func (s *Server) SetQty(ctx echo.Context) error {
	packID, boxID, lineID, err := pathPackBoxAndLine(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request SetQtyRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetQtyCommand(packID, boxID, lineID, request.Qty)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.setQtyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		metrics.RecordPackOperation("set_qty", "error")
		return respondError(ctx, err)
	}

	metrics.RecordPackOperation("set_qty", "ok")
	return ctx.NoContent(http.StatusNoContent)
}

// RemoveItem handles DELETE /api/v1/packs/:packID/boxes/:boxID/items/:lineID.
// Removes one unit unless a larger qty query parameter is given; the removed
// amount clamps at what the box holds.
func (s *Server) RemoveItem(ctx echo.Context) error {
	packID, boxID, lineID, err := pathPackBoxAndLine(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	qty := 1
	if raw := ctx.QueryParam("qty"); raw != "" {
		if err = echo.QueryParamsBinder(ctx).Int("qty", &qty).BindError(); err != nil {
			return badRequest(ctx, "Invalid qty parameter")
		}
	}

	cmd, err := commands.NewRemoveItemCommand(packID, boxID, lineID, qty)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.removeItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		metrics.RecordPackOperation("remove_item", "error")
		return respondError(ctx, err)
	}

	metrics.RecordPackOperation("remove_item", "ok")
	return ctx.NoContent(http.StatusNoContent)
}

// RemoveAllPacked handles POST /api/v1/packs/:packID/boxes/:boxID/items/:lineID/remove-all.
func (s *Server) RemoveAllPacked(ctx echo.Context) error {
	packID, boxID, lineID, err := pathPackBoxAndLine(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveAllPackedCommand(packID, boxID, lineID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.removeAllPackedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		metrics.RecordPackOperation("remove_all_packed", "error")
		return respondError(ctx, err)
	}

	metrics.RecordPackOperation("remove_all_packed", "ok")
	return ctx.NoContent(http.StatusNoContent)
}

// SetBoxWeightRequest is the body for PUT /packs/:packID/boxes/:boxID/weight.
// A null weight clears the box back to unweighed.
type SetBoxWeightRequest struct {
	WeightLb *float64 `json:"weight_lb"`
}

// SetBoxWeight handles PUT /api/v1/packs/:packID/boxes/:boxID/weight.
func (s *Server) SetBoxWeight(ctx echo.Context) error {
	packID, boxID, err := pathPackAndBox(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request SetBoxWeightRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetBoxWeightCommand(packID, boxID, request.WeightLb)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.setBoxWeightHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		metrics.RecordPackOperation("set_box_weight", "error")
		return respondError(ctx, err)
	}

	metrics.RecordPackOperation("set_box_weight", "ok")
	return ctx.NoContent(http.StatusNoContent)
}

// CompletePack handles POST /api/v1/packs/:packID/complete.
func (s *Server) CompletePack(ctx echo.Context) error {
	packID, err := pathUUID(ctx, "packID")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCompletePackCommand(packID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.completePackHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		metrics.RecordPackOperation("complete_pack", "error")
		return respondError(ctx, err)
	}

	metrics.RecordPackOperation("complete_pack", "ok")
	return ctx.NoContent(http.StatusNoContent)
}

// ReopenPack handles POST /api/v1/packs/:packID/reopen.
func (s *Server) ReopenPack(ctx echo.Context) error {
	packID, err := pathUUID(ctx, "packID")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewReopenPackCommand(packID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.reopenPackHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		metrics.RecordPackOperation("reopen_pack", "error")
		return respondError(ctx, err)
	}

	metrics.RecordPackOperation("reopen_pack", "ok")
	return ctx.NoContent(http.StatusNoContent)
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

func pathPackAndBox(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	packID, err := pathUUID(ctx, "packID")
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	boxID, err := pathUUID(ctx, "boxID")
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	return packID, boxID, nil
}

func pathPackBoxAndLine(ctx echo.Context) (kernel.UUID, kernel.UUID, kernel.UUID, error) {
	packID, boxID, err := pathPackAndBox(ctx)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, kernel.UUID{}, err
	}

	lineID, err := pathUUID(ctx, "lineID")
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, kernel.UUID{}, err
	}

	return packID, boxID, lineID, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
