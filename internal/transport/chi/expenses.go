package chi

import (
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListExpenses handles GET /expenses.
func (s *Server) ListExpenses(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.userID(w, r)
	if !ok {
		return
	}

	list, err := s.expenses.List(r.Context(), userID)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	resp := make([]Expense, 0, len(list))
	for _, e := range list {
		resp = append(resp, expenseToResponse(e))
	}
	writeJSON(w, http.StatusOK, resp)
}

// CreateExpense handles POST /expenses.
func (s *Server) CreateExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.userID(w, r)
	if !ok {
		return
	}

	var req ExpenseRequest
	if !decodeBody(w, r, &req) {
		return
	}
	draft, err := expenseDraftFromRequest(req)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	e, err := s.expenses.Create(r.Context(), userID, draft)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, expenseToResponse(e))
}

// UpdateExpense handles PUT /expenses/{id}.
func (s *Server) UpdateExpense(w http.ResponseWriter, r *http.Request, id openapi_types.UUID) {
	userID, ok := s.userID(w, r)
	if !ok {
		return
	}

	var req ExpenseRequest
	if !decodeBody(w, r, &req) {
		return
	}
	draft, err := expenseDraftFromRequest(req)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	e, err := s.expenses.Update(r.Context(), userID, id, draft)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, expenseToResponse(e))
}

// DeleteExpense handles DELETE /expenses/{id}.
func (s *Server) DeleteExpense(w http.ResponseWriter, r *http.Request, id openapi_types.UUID) {
	userID, ok := s.userID(w, r)
	if !ok {
		return
	}

	if err := s.expenses.Delete(r.Context(), userID, id); err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
}
