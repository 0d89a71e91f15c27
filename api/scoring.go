package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	scoringevents "github.com/sandlot-league/scorebook/app/modules/scoring/events"
	"github.com/sandlot-league/scorebook/app/shared/attr"
	sharedtypes "github.com/sandlot-league/scorebook/app/shared/types"
)

type battingEventRequest struct {
	scoringevents.BattingEventInput
	SelectedOutRunnerIDs []int64 `json:"selected_out_runner_ids"`
}

func (s *Server) handleRecordEvent(w http.ResponseWriter, r *http.Request) {
	var req battingEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	req.GameID = sharedtypes.GameID(chi.URLParam(r, "gameID"))

	result, err := s.scoring.RecordBattingEvent(r.Context(), req.BattingEventInput, req.SelectedOutRunnerIDs)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Failed to record batting event",
			attr.GameID("game_id", req.GameID),
			attr.Error(err),
		)
		s.respondError(w, r, http.StatusInternalServerError, "failed to record batting event")
		return
	}
	if result.IsFailure() {
		s.respondJSON(w, r, http.StatusUnprocessableEntity, result.Failure)
		return
	}
	s.respondJSON(w, r, http.StatusCreated, result.Success)
}

func (s *Server) handleCorrectEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(chi.URLParam(r, "eventID"), 10, 64)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "invalid event id")
		return
	}

	var req battingEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	req.GameID = sharedtypes.GameID(chi.URLParam(r, "gameID"))

	result, err := s.scoring.CorrectBattingEvent(r.Context(), sharedtypes.EventID(eventID), req.BattingEventInput, req.SelectedOutRunnerIDs)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Failed to correct batting event",
			attr.GameID("game_id", req.GameID),
			attr.Int64("event_id", eventID),
			attr.Error(err),
		)
		s.respondError(w, r, http.StatusInternalServerError, "failed to correct batting event")
		return
	}
	if result.IsFailure() {
		s.respondJSON(w, r, http.StatusUnprocessableEntity, result.Failure)
		return
	}
	s.respondJSON(w, r, http.StatusOK, result.Success)
}

func (s *Server) handleGameState(w http.ResponseWriter, r *http.Request) {
	gameID := sharedtypes.GameID(chi.URLParam(r, "gameID"))

	inning, err := strconv.Atoi(r.URL.Query().Get("inning"))
	if err != nil || inning < 1 {
		s.respondError(w, r, http.StatusBadRequest, "inning must be a positive integer")
		return
	}
	battingFirst := r.URL.Query().Get("half") != "bottom"

	state, err := s.scoring.GetGameState(r.Context(), gameID, inning, battingFirst)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Failed to read game state",
			attr.GameID("game_id", gameID),
			attr.Inning(inning),
			attr.Error(err),
		)
		s.respondError(w, r, http.StatusInternalServerError, "failed to read game state")
		return
	}
	s.respondJSON(w, r, http.StatusOK, state)
}
