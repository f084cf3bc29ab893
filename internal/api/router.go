package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wagerworks/ecosim/internal/engine"
)

// NewRouter constructs the chi router with all API endpoints registered.
func NewRouter(eng *engine.Engine) http.Handler {
	h := NewHandler(eng)
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/v1/accounts", func(r chi.Router) {
		r.Post("/", h.CreateAccountHandler)

		r.Route("/{accountId}", func(r chi.Router) {
			r.Get("/", h.GetAccountHandler)
			r.Get("/history", h.HistoryHandler)

			r.Post("/work", h.WorkHandler)
			r.Post("/crime", h.CrimeHandler)
			r.Post("/forage/{area}", h.ForageHandler)

			r.Post("/transfer", h.TransferHandler)
			r.Post("/rob", h.RobHandler)
			r.Post("/vault/deposit", h.DepositHandler)
			r.Post("/vault/withdraw", h.WithdrawHandler)

			r.Route("/gamble", func(r chi.Router) {
				r.Post("/coinflip", h.CoinflipHandler)
				r.Post("/dice", h.DiceHandler)
				r.Post("/roulette", h.RouletteHandler)
				r.Post("/highlow", h.HighLowHandler)
				r.Post("/slots", h.SlotsHandler)
				r.Post("/crash", h.CrashHandler)
				r.Post("/plinko", h.PlinkoHandler)
				r.Post("/lottery", h.LotteryHandler)
				r.Post("/blackjack", h.BlackjackHandler)
				r.Post("/scratch", h.ScratchHandler)

				r.Post("/mines/start", h.MinesStartHandler)
				r.Post("/mines/reveal", h.MinesRevealHandler)
				r.Post("/mines/cashout", h.MinesCashOutHandler)
			})
		})
	})

	return r
}
