package chi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface lists every HTTP operation of the API.
type ServerInterface interface {
	// GET /ai-usage
	GetAIUsage(w http.ResponseWriter, r *http.Request)
	// POST /ai-usage
	RecordAIUsage(w http.ResponseWriter, r *http.Request)
	// POST /chat
	Chat(w http.ResponseWriter, r *http.Request)
	// POST /generate-report
	GenerateReport(w http.ResponseWriter, r *http.Request)
	// GET /expenses
	ListExpenses(w http.ResponseWriter, r *http.Request)
	// POST /expenses
	CreateExpense(w http.ResponseWriter, r *http.Request)
	// PUT /expenses/{id}
	UpdateExpense(w http.ResponseWriter, r *http.Request, id openapi_types.UUID)
	// DELETE /expenses/{id}
	DeleteExpense(w http.ResponseWriter, r *http.Request, id openapi_types.UUID)
	// GET /savings-goals
	ListSavingsGoals(w http.ResponseWriter, r *http.Request)
	// POST /savings-goals
	CreateSavingsGoal(w http.ResponseWriter, r *http.Request)
	// GET /health
	HealthCheck(w http.ResponseWriter, r *http.Request)
	// GET /metrics
	Metrics(w http.ResponseWriter, r *http.Request)
}

// MiddlewareFunc wraps a single operation handler.
type MiddlewareFunc func(http.Handler) http.Handler

// InvalidParamFormatError reports a path parameter that failed to bind.
type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error { return e.Err }

// ServerInterfaceWrapper binds path parameters before calling the handler.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandlerFunc   func(w http.ResponseWriter, r *http.Request, err error)
}

func (siw *ServerInterfaceWrapper) wrap(h http.Handler) http.Handler {
	for _, m := range siw.HandlerMiddlewares {
		h = m(h)
	}
	return h
}

func (siw *ServerInterfaceWrapper) plain(op func(http.ResponseWriter, *http.Request)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		siw.wrap(http.HandlerFunc(op)).ServeHTTP(w, r)
	}
}

func (siw *ServerInterfaceWrapper) withID(
	op func(http.ResponseWriter, *http.Request, openapi_types.UUID),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var id openapi_types.UUID
		err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
			runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
		if err != nil {
			siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
			return
		}
		siw.wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			op(w, r, id)
		})).ServeHTTP(w, r)
	}
}

// ChiServerOptions configures HandlerWithOptions.
type ChiServerOptions struct {
	BaseURL          string
	BaseRouter       chi.Router
	Middlewares      []MiddlewareFunc
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// HandlerWithOptions mounts every operation of si on the router.
func HandlerWithOptions(si ServerInterface, options ChiServerOptions) http.Handler {
	r := options.BaseRouter
	if r == nil {
		r = chi.NewRouter()
	}
	if options.ErrorHandlerFunc == nil {
		options.ErrorHandlerFunc = func(w http.ResponseWriter, _ *http.Request, err error) {
			writeError(w, http.StatusBadRequest, ErrorResponseCodeBadRequest, err.Error())
		}
	}
	siw := &ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandlerFunc:   options.ErrorHandlerFunc,
	}
	base := options.BaseURL

	r.Get(base+"/ai-usage", siw.plain(si.GetAIUsage))
	r.Post(base+"/ai-usage", siw.plain(si.RecordAIUsage))
	r.Post(base+"/chat", siw.plain(si.Chat))
	r.Post(base+"/generate-report", siw.plain(si.GenerateReport))
	r.Get(base+"/expenses", siw.plain(si.ListExpenses))
	r.Post(base+"/expenses", siw.plain(si.CreateExpense))
	r.Put(base+"/expenses/{id}", siw.withID(si.UpdateExpense))
	r.Delete(base+"/expenses/{id}", siw.withID(si.DeleteExpense))
	r.Get(base+"/savings-goals", siw.plain(si.ListSavingsGoals))
	r.Post(base+"/savings-goals", siw.plain(si.CreateSavingsGoal))
	r.Get(base+"/health", siw.plain(si.HealthCheck))
	r.Get(base+"/metrics", siw.plain(si.Metrics))

	return r
}
