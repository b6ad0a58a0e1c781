package http

import (
	"net/http"

	"github.com/amanpandey8120/vlocker-app/internal/application/address"
	"github.com/amanpandey8120/vlocker-app/internal/application/bank"
	"github.com/amanpandey8120/vlocker-app/internal/application/customer"
	"github.com/amanpandey8120/vlocker-app/internal/application/feedback"
	"github.com/amanpandey8120/vlocker-app/internal/application/loan"
	"github.com/amanpandey8120/vlocker-app/internal/application/support"
	"github.com/amanpandey8120/vlocker-app/internal/application/user"
	"github.com/amanpandey8120/vlocker-app/internal/application/video"
	"github.com/amanpandey8120/vlocker-app/internal/config"
	"github.com/amanpandey8120/vlocker-app/internal/domain"
	"github.com/amanpandey8120/vlocker-app/internal/infrastructure/dynamo"
	jwtinfra "github.com/amanpandey8120/vlocker-app/internal/infrastructure/jwt"
	s3infra "github.com/amanpandey8120/vlocker-app/internal/infrastructure/s3"
	"github.com/amanpandey8120/vlocker-app/internal/infrastructure/sns"
	"github.com/amanpandey8120/vlocker-app/internal/transport/http/handler"
	appmiddleware "github.com/amanpandey8120/vlocker-app/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	CustomerRepo *dynamo.CustomerRepo
	LoanRepo     *dynamo.LoanRepo
	BankRepo     *dynamo.BankRepo
	AddressRepo  *dynamo.AddressRepo
	FeedbackRepo *dynamo.FeedbackRepo
	VideoRepo    *dynamo.VideoRepo
	SupportRepo  *dynamo.SupportRepo
	UserRepo     *dynamo.UserRepo
	S3Store      *s3infra.Store
	SMSSender    sns.SMSSender
	JWTProvider  *jwtinfra.Provider
}

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	var authMw func(http.Handler) http.Handler
	if deps.JWTProvider != nil {
		authMw = appmiddleware.Auth(deps.JWTProvider)
	} else {
		authMw = func(next http.Handler) http.Handler { return next }
	}

	// 5 requests/second, burst of 10 — applied to the OTP endpoints so a
	// single client cannot hammer SMS delivery.
	otpRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	customerSvc := customer.NewService(deps.CustomerRepo, deps.SMSSender, cfg.OTPTTL)
	loanSvc := loan.NewService(deps.LoanRepo, deps.CustomerRepo)
	bankSvc := bank.NewService(deps.BankRepo, deps.CustomerRepo)
	addressSvc := address.NewService(deps.AddressRepo, deps.CustomerRepo)
	feedbackSvc := feedback.NewService(deps.FeedbackRepo, deps.UserRepo)
	videoSvc := video.NewService(deps.VideoRepo, deps.S3Store)
	supportSvc := support.NewService(deps.SupportRepo)
	userSvc := user.NewService(deps.UserRepo)

	healthH := handler.NewHealthHandler()
	customerH := handler.NewCustomerHandler(customerSvc, deps.S3Store)
	loanH := handler.NewLoanHandler(loanSvc)
	bankH := handler.NewBankHandler(bankSvc)
	addressH := handler.NewAddressHandler(addressSvc)
	feedbackH := handler.NewFeedbackHandler(feedbackSvc)
	videoH := handler.NewVideoHandler(videoSvc)
	supportH := handler.NewSupportHandler(supportSvc)
	userH := handler.NewUserHandler(userSvc)

	r.Route("/v1", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health-check", healthH.Ping)

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.With(otpRL.Limit).Post("/customers/send-otp", customerH.SendOTP)
			r.With(otpRL.Limit).Post("/customers/verify-otp", customerH.VerifyOTP)
			r.Get("/customers", customerH.List)
			r.Get("/customers/{id}", customerH.Get)
			r.Put("/customers/{id}", customerH.Update)
			r.Delete("/customers/{id}", customerH.Delete)
			r.Post("/customers/{id}/kyc/aadhaar", customerH.UploadAadhaar)
			r.Post("/customers/{id}/kyc/pan", customerH.UploadPAN)
			r.Post("/customers/{id}/kyc/bank-passbook", customerH.UploadBankPassbook)

			r.Post("/customers/{customerId}/loans", loanH.Create)
			r.Get("/customers/{customerId}/loans", loanH.ListByCustomer)
			r.Get("/loans/{id}", loanH.Get)
			r.Put("/loans/{id}", loanH.Update)
			r.Delete("/loans/{id}", loanH.Delete)

			r.Post("/customers/{customerId}/banks", bankH.Create)
			r.Get("/customers/{customerId}/banks", bankH.ListByCustomer)
			r.Get("/banks/{id}", bankH.Get)
			r.Put("/banks/{id}", bankH.Update)
			r.Delete("/banks/{id}", bankH.Delete)

			r.Post("/customers/{customerId}/addresses", addressH.Create)
			r.Get("/addresses", addressH.List)
			r.Get("/addresses/{id}", addressH.Get)
			r.Put("/addresses/{id}", addressH.Update)
			r.Delete("/addresses/{id}", addressH.Delete)

			r.Post("/feedbacks", feedbackH.Create)
			r.Get("/feedbacks", feedbackH.ListMine)

			r.Get("/videos", videoH.List)
			r.Get("/support", supportH.Get)

			r.Post("/users/complete-profile", userH.CompleteProfile)
			r.Get("/users/me", userH.GetMe)
			r.Put("/users/me", userH.UpdateMe)

			// Admin-only routes
			r.Group(func(r chi.Router) {
				r.Use(appmiddleware.RequireRole(domain.RoleAdmin))

				r.Get("/feedbacks/all", feedbackH.ListAll)
				r.Get("/feedbacks/{id}", feedbackH.Get)

				r.Post("/videos", videoH.Create)

				r.Post("/support", supportH.Create)
				r.Put("/support", supportH.Update)

				r.Get("/users", userH.List)
				r.Get("/users/{id}", userH.Get)
			})
		})
	})

	return r
}
