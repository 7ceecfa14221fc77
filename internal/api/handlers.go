package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hunterline/internal/engine"
)

const (
	defaultLogLimit = 20
	maxLogLimit     = 200
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	h, err := s.svc.Hunter(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newHunterView(h))
}

type updateProfileRequest struct {
	Name *string `json:"name"`
	Gold *int    `json:"gold"`
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h, err := s.svc.UpdateHunter(r.Context(), engine.UpdateHunterInput{Name: req.Name, Gold: req.Gold})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newHunterView(h))
}

func (s *Server) handleAchievements(w http.ResponseWriter, r *http.Request) {
	list, err := s.svc.Achievements(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, achievementsView{Earned: engine.CountEarned(list), Total: len(list), Achievements: list})
}

func (s *Server) handleListQuests(w http.ResponseWriter, r *http.Request) {
	stat := r.URL.Query().Get("stat")
	quests, err := s.svc.ListQuests(r.Context(), stat)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	query := r.URL.Query().Get("q")
	quests = engine.SearchQuests(quests, query)
	writeJSON(w, http.StatusOK, questListView{Total: len(quests), StatFilter: stat, Query: query, Quests: quests})
}

func (s *Server) handleCreateQuest(w http.ResponseWriter, r *http.Request) {
	var draft engine.QuestDraft
	if !decodeJSON(w, r, &draft) {
		return
	}
	in, err := draft.Input()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	q, err := s.svc.CreateQuest(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, q)
}

func (s *Server) handleGetQuest(w http.ResponseWriter, r *http.Request) {
	q, err := s.svc.GetQuest(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

type patchQuestRequest struct {
	Name        *string `json:"name"`
	Stat        *string `json:"stat"`
	Difficulty  *string `json:"difficulty"`
	XPReward    *int    `json:"xp_reward"`
	GoldReward  *int    `json:"gold_reward"`
	Description *string `json:"description"`
}

func (req patchQuestRequest) input() (engine.UpdateQuestInput, error) {
	in := engine.UpdateQuestInput{
		Name:        req.Name,
		XPReward:    req.XPReward,
		GoldReward:  req.GoldReward,
		Description: req.Description,
	}
	if req.Stat != nil {
		c, err := engine.ParseCategory(*req.Stat)
		if err != nil {
			return in, err
		}
		in.Stat = &c
	}
	if req.Difficulty != nil {
		d, err := engine.ParseDifficulty(*req.Difficulty)
		if err != nil {
			return in, err
		}
		in.Difficulty = &d
	}
	return in, nil
}

func (s *Server) handleUpdateQuest(w http.ResponseWriter, r *http.Request) {
	var req patchQuestRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	in, err := req.input()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	q, err := s.svc.UpdateQuest(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (s *Server) handleDeleteQuest(w http.ResponseWriter, r *http.Request) {
	ok, err := s.svc.DeleteQuest(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": ok})
}

func (s *Server) handleCompleteQuest(w http.ResponseWriter, r *http.Request) {
	res, err := s.svc.CompleteQuest(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newCompletionView(res))
}

func (s *Server) handleLog(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", defaultLogLimit)
	if err != nil || limit < 0 {
		writeErrorCode(w, http.StatusBadRequest, "bad_request", "limit must be a non-negative integer")
		return
	}
	limit = min(limit, maxLogLimit)

	entries, err := s.svc.RecentCompletions(r.Context(), limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	totals, err := s.svc.CompletionTotals(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, logView{Entries: entries, Totals: totals})
}
