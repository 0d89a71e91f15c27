package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	lineuptypes "github.com/sandlot-league/scorebook/app/modules/lineup/domain/types"
	lineupevents "github.com/sandlot-league/scorebook/app/modules/lineup/events"
	"github.com/sandlot-league/scorebook/app/shared/attr"
	sharedtypes "github.com/sandlot-league/scorebook/app/shared/types"
)

const maxImportBytes = 1 << 20 // uploaded lineup sheets are tiny

func (s *Server) handleGetLineup(w http.ResponseWriter, r *http.Request) {
	gameID := sharedtypes.GameID(chi.URLParam(r, "gameID"))
	teamID := sharedtypes.TeamID(r.URL.Query().Get("team_id"))
	if teamID == "" {
		s.respondError(w, r, http.StatusBadRequest, "team_id is required")
		return
	}
	useDH := r.URL.Query().Get("use_dh") == "true"

	lineup, err := s.lineup.GetLineup(r.Context(), gameID, teamID, useDH)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Failed to read lineup",
			attr.GameID("game_id", gameID),
			attr.TeamID("team_id", teamID),
			attr.Error(err),
		)
		s.respondError(w, r, http.StatusInternalServerError, "failed to read lineup")
		return
	}
	s.respondJSON(w, r, http.StatusOK, lineup)
}

func (s *Server) handleSaveLineup(w http.ResponseWriter, r *http.Request) {
	var lineup lineuptypes.Lineup
	if err := json.NewDecoder(r.Body).Decode(&lineup); err != nil {
		s.respondError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	lineup.GameID = sharedtypes.GameID(chi.URLParam(r, "gameID"))

	result, err := s.lineup.SaveLineup(r.Context(), lineup)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Failed to save lineup",
			attr.GameID("game_id", lineup.GameID),
			attr.TeamID("team_id", lineup.TeamID),
			attr.Error(err),
		)
		s.respondError(w, r, http.StatusInternalServerError, "failed to save lineup")
		return
	}
	if result.IsFailure() {
		s.respondJSON(w, r, http.StatusUnprocessableEntity, result.Failure)
		return
	}
	s.respondJSON(w, r, http.StatusOK, result.Success)
}

func (s *Server) handleImportLineup(w http.ResponseWriter, r *http.Request) {
	gameID := sharedtypes.GameID(chi.URLParam(r, "gameID"))

	if err := r.ParseMultipartForm(maxImportBytes); err != nil {
		s.respondError(w, r, http.StatusBadRequest, "invalid multipart form")
		return
	}
	teamID := sharedtypes.TeamID(r.FormValue("team_id"))
	if teamID == "" {
		s.respondError(w, r, http.StatusBadRequest, "team_id is required")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxImportBytes))
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "failed to read file")
		return
	}

	payload := lineupevents.LineupImportRequestedPayloadV1{
		GameID:   gameID,
		TeamID:   teamID,
		Filename: header.Filename,
		Content:  content,
		UseDH:    r.FormValue("use_dh") == "true",
	}

	result, err := s.lineup.ImportLineup(r.Context(), payload)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Failed to import lineup",
			attr.GameID("game_id", gameID),
			attr.TeamID("team_id", teamID),
			attr.Error(err),
		)
		s.respondError(w, r, http.StatusInternalServerError, "failed to import lineup")
		return
	}
	if result.IsFailure() {
		s.respondJSON(w, r, http.StatusUnprocessableEntity, result.Failure)
		return
	}
	s.respondJSON(w, r, http.StatusOK, result.Success)
}

func (s *Server) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	teamID := sharedtypes.TeamID(chi.URLParam(r, "teamID"))

	template, err := s.lineup.GetTemplate(r.Context(), teamID)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Failed to read lineup template",
			attr.TeamID("team_id", teamID),
			attr.Error(err),
		)
		s.respondError(w, r, http.StatusInternalServerError, "failed to read lineup template")
		return
	}
	if template == nil {
		s.respondError(w, r, http.StatusNotFound, "no template saved for team")
		return
	}
	s.respondJSON(w, r, http.StatusOK, template)
}
