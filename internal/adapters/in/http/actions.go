package http

import (
	"github.com/labstack/echo/v4"

	"freightgate/internal/core/application/usecases/commands"
	"freightgate/internal/core/application/usecases/queries"
	"freightgate/internal/core/domain/model/carrier"
	"freightgate/internal/pkg/errs"
)

// actionSpec binds one action name to its policy and handler. The table is
// the single place that decides which actions demand POST, staff identity, or
// idempotency replay.
type actionSpec struct {
	post       bool
	staff      bool
	idempotent bool
	handle     func(c echo.Context, req *actionRequest) (map[string]any, error)
}

func (s *Server) actionTable() map[string]actionSpec {
	return map[string]actionSpec{
		"carriers": {handle: s.actionCarriers},
		"rules":    {handle: s.actionRules},
		"health":   {handle: s.actionHealth},
		"expired":  {handle: s.actionExpired},

		"rates":           {post: true, handle: s.actionRates},
		"audit":           {post: true, handle: s.actionAudit},
		"history":         {post: true, handle: s.actionHistory},
		"history_csv":     {post: true, handle: s.actionHistoryCSV},
		"bulk_print":      {post: true, handle: s.actionBulkPrint},
		"tracking_events": {post: true, handle: s.actionTrackingEvents},
		"track":           {post: true, handle: s.actionTrack},

		"reserve": {post: true, staff: true, idempotent: true, handle: s.actionReserve},
		"create":  {post: true, staff: true, idempotent: true, handle: s.actionCreate},
		"void":    {post: true, staff: true, handle: s.actionVoid},
	}
}

// resolveConfig loads the per-request carrier configuration, preferring the
// transfer's source outlet over a directly named one.
func (s *Server) resolveConfig(c echo.Context, req *actionRequest) carrier.GatewayConfig {
	return s.resolver.Resolve(c.Request().Context(), req.i64("transfer_id"), req.i64("outlet_from_id"))
}

func (s *Server) actionCarriers(c echo.Context, req *actionRequest) (map[string]any, error) {
	roster, err := s.carriersHandler.Handle(
		c.Request().Context(), queries.NewGetCarriersQuery(s.resolveConfig(c, req)))
	if err != nil {
		return nil, err
	}

	return map[string]any{"carriers": roster}, nil
}

func (s *Server) actionRules(c echo.Context, _ *actionRequest) (map[string]any, error) {
	strategies, err := s.strategiesHandler.Handle(c.Request().Context(), queries.NewGetStrategiesQuery())
	if err != nil {
		return nil, err
	}

	return map[string]any{"strategies": strategies}, nil
}

func (s *Server) actionHealth(c echo.Context, req *actionRequest) (map[string]any, error) {
	checks, err := s.healthHandler.Handle(
		c.Request().Context(), queries.NewGetHealthQuery(s.resolveConfig(c, req)))
	if err != nil {
		return nil, err
	}

	return map[string]any{"checks": checks}, nil
}

func (s *Server) actionExpired(c echo.Context, req *actionRequest) (map[string]any, error) {
	rows, err := s.expiredHandler.Handle(
		c.Request().Context(), queries.NewGetExpiredQuery(s.resolveConfig(c, req)))
	if err != nil {
		return nil, err
	}

	return map[string]any{"rows": rows}, nil
}

func (s *Server) actionRates(c echo.Context, req *actionRequest) (map[string]any, error) {
	query, err := queries.NewGetRatesQuery(
		req.str("carrier"), req.packages(), req.options(), req.sendContext(),
		s.resolveConfig(c, req))
	if err != nil {
		return nil, err
	}

	results, err := s.ratesHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return nil, err
	}

	return map[string]any{"results": results}, nil
}

func (s *Server) actionReserve(c echo.Context, req *actionRequest) (map[string]any, error) {
	payload := req.payload()
	crr, err := parseCarrier(req.str("carrier"), payload.Service() != "")
	if err != nil {
		return nil, err
	}

	cmd, err := commands.NewReserveShipmentCommand(
		crr, payload, req.i64("transfer_id"), req.staffID, s.resolveConfig(c, req))
	if err != nil {
		return nil, err
	}

	result, err := s.reserveHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"db_id":          result.ConsignmentID.String(),
		"simulated":      result.Simulated,
		"reservation_id": result.Reservation.ReservationID,
		"number":         result.Reservation.Number,
	}, nil
}

func (s *Server) actionCreate(c echo.Context, req *actionRequest) (map[string]any, error) {
	payload := req.payload()
	crr, err := parseCarrier(req.str("carrier"), payload.Service() != "")
	if err != nil {
		return nil, err
	}

	// The reservation reference may ride at the top level or inside the
	// payload; normalize so the handler sees one place.
	if rid := req.str("reservation_id"); rid != "" && payload.ReservationID() == "" {
		payload["reservation_id"] = rid
	}

	cmd, err := commands.NewCreateLabelCommand(
		crr, payload, req.i64("transfer_id"), req.staffID, s.resolveConfig(c, req))
	if err != nil {
		return nil, err
	}

	result, err := s.createHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"db_id":           result.ConsignmentID.String(),
		"simulated":       result.Simulated,
		"label_id":        result.Label.LabelID,
		"tracking_number": result.Label.TrackingNumber,
		"url":             result.Label.URL,
	}, nil
}

func (s *Server) actionVoid(c echo.Context, req *actionRequest) (map[string]any, error) {
	labelID := req.str("label_id")
	crr, err := parseCarrierWith(req.str("carrier"), labelID != "", "carrier and label_id are required")
	if err != nil {
		return nil, err
	}

	cmd, err := commands.NewVoidLabelCommand(crr, labelID, s.resolveConfig(c, req))
	if err != nil {
		return nil, err
	}

	result, err := s.voidHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"db_voided": result.DBVoided,
		"simulated": result.Simulated,
		"voided":    result.Void.Voided,
		"label_id":  result.Void.LabelID,
	}, nil
}

func (s *Server) actionTrack(c echo.Context, req *actionRequest) (map[string]any, error) {
	tracking := req.str("tracking")
	crr, err := parseCarrierWith(req.str("carrier"), tracking != "", "carrier and tracking are required")
	if err != nil {
		return nil, err
	}

	cmd, err := commands.NewTrackShipmentCommand(crr, tracking, s.resolveConfig(c, req))
	if err != nil {
		return nil, err
	}

	result, err := s.trackHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"stored_events": result.Stored,
		"tracking":      result.Track.Tracking,
		"events":        result.Track.Events,
	}, nil
}

func (s *Server) actionAudit(c echo.Context, req *actionRequest) (map[string]any, error) {
	query, err := queries.NewAuditPackagesQuery(req.packages())
	if err != nil {
		return nil, err
	}

	audit, err := s.auditHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"suggestions": audit.Suggestions,
		"meters":      audit.Meters,
	}, nil
}

func (s *Server) actionHistory(c echo.Context, req *actionRequest) (map[string]any, error) {
	transferID := req.i64("transfer_id")

	rows, err := s.historyHandler.Handle(
		c.Request().Context(), queries.NewGetHistoryQuery(transferID, int(req.i64("limit"))))
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"rows":        rows,
		"transfer_id": transferID,
		"count":       len(rows),
	}, nil
}

func (s *Server) actionHistoryCSV(c echo.Context, req *actionRequest) (map[string]any, error) {
	export, err := s.exportHandler.Handle(
		c.Request().Context(),
		queries.NewExportHistoryQuery(req.i64("transfer_id"), int(req.i64("limit"))))
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"csv":      export.CSV,
		"filename": export.Filename,
		"count":    export.Count,
	}, nil
}

func (s *Server) actionBulkPrint(c echo.Context, req *actionRequest) (map[string]any, error) {
	bundle, err := s.bulkPrintHandler.Handle(
		c.Request().Context(),
		queries.NewBulkPrintQuery(req.strSlice("label_ids"), req.strSlice("tracking_numbers")))
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"bundle_html": bundle.BundleHTML,
		"count":       bundle.Count,
	}, nil
}

func (s *Server) actionTrackingEvents(c echo.Context, req *actionRequest) (map[string]any, error) {
	query, err := queries.NewGetTrackingEventsQuery(req.str("tracking"))
	if err != nil {
		return nil, err
	}

	row, err := s.trackingEventsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return nil, err
	}

	return map[string]any{"row": row}, nil
}

// parseCarrier enforces the reserve/create precondition that both a carrier
// and a payload service are present before the carrier code is interpreted.
func parseCarrier(code string, hasService bool) (carrier.Carrier, error) {
	return parseCarrierWith(code, hasService, "carrier and payload.service are required")
}

func parseCarrierWith(code string, hasCompanion bool, requiredMsg string) (carrier.Carrier, error) {
	if code == "" || !hasCompanion {
		return carrier.Unknown, errs.NewBadRequestError(requiredMsg)
	}

	crr, err := carrier.Parse(code)
	if err != nil {
		return carrier.Unknown, errs.NewBadCarrierError(code)
	}

	return crr, nil
}
