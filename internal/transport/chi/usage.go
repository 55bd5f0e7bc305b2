package chi

import "net/http"

// GetAIUsage handles GET /ai-usage.
func (s *Server) GetAIUsage(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.userID(w, r)
	if !ok {
		return
	}

	st, err := s.quota.Status(r.Context(), userID)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, UsageStatusResponse{
		IsPremium:      st.IsPremium(),
		Used:           st.Used(),
		Limit:          st.Limit(),
		Remaining:      st.Remaining(),
		CanSendMessage: st.CanSendMessage(),
	})
}

// RecordAIUsage handles POST /ai-usage. It counts one unit without a quota check.
func (s *Server) RecordAIUsage(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.userID(w, r)
	if !ok {
		return
	}

	if err := s.quota.Record(r.Context(), userID); err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
}
