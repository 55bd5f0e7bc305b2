package chi

import "net/http"

// ListSavingsGoals handles GET /savings-goals.
func (s *Server) ListSavingsGoals(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.userID(w, r)
	if !ok {
		return
	}

	list, err := s.goals.List(r.Context(), userID)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	resp := make([]SavingsGoal, 0, len(list))
	for _, g := range list {
		resp = append(resp, goalToResponse(g))
	}
	writeJSON(w, http.StatusOK, resp)
}

// CreateSavingsGoal handles POST /savings-goals.
func (s *Server) CreateSavingsGoal(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.userID(w, r)
	if !ok {
		return
	}

	var req SavingsGoalRequest
	if !decodeBody(w, r, &req) {
		return
	}
	draft, err := goalDraftFromRequest(req)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	g, err := s.goals.Create(r.Context(), userID, draft)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, goalToResponse(g))
}
