package api

import (
	"net/http"

	"github.com/wagerworks/ecosim/internal/engine"
)

// --- Gambling handlers ---

type betRequest struct {
	Bet int64 `json:"bet"`
}

type coinflipRequest struct {
	Bet  int64  `json:"bet"`
	Side string `json:"side"`
}

type diceRequest struct {
	Bet   int64 `json:"bet"`
	Guess int   `json:"guess"`
}

type rouletteRequest struct {
	Bet    int64  `json:"bet"`
	Type   string `json:"type"`
	Number int    `json:"number"`
}

type highLowRequest struct {
	Bet   int64  `json:"bet"`
	Guess string `json:"guess"`
}

type crashRequest struct {
	Bet     int64   `json:"bet"`
	CashOut float64 `json:"cashOut"`
}

type plinkoRequest struct {
	Bet  int64  `json:"bet"`
	Tier string `json:"tier"`
}

type lotteryRequest struct {
	Bet   int64 `json:"bet"`
	Picks []int `json:"picks"`
}

type minesRevealRequest struct {
	Tile int `json:"tile"`
}

func (h *HandlerProvider) CoinflipHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.accountID(w, r)
	if !ok {
		return
	}

	var req coinflipRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.eng.Coinflip(r.Context(), id, req.Bet, req.Side)
	h.writeGamble(w, res, err)
}

func (h *HandlerProvider) DiceHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.accountID(w, r)
	if !ok {
		return
	}

	var req diceRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.eng.Dice(r.Context(), id, req.Bet, req.Guess)
	h.writeGamble(w, res, err)
}

func (h *HandlerProvider) RouletteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.accountID(w, r)
	if !ok {
		return
	}

	var req rouletteRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.eng.Roulette(r.Context(), id, req.Bet, req.Type, req.Number)
	h.writeGamble(w, res, err)
}

func (h *HandlerProvider) HighLowHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.accountID(w, r)
	if !ok {
		return
	}

	var req highLowRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.eng.HighLow(r.Context(), id, req.Bet, req.Guess)
	h.writeGamble(w, res, err)
}

func (h *HandlerProvider) SlotsHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.accountID(w, r)
	if !ok {
		return
	}

	var req betRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.eng.Slots(r.Context(), id, req.Bet)
	h.writeGamble(w, res, err)
}

func (h *HandlerProvider) CrashHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.accountID(w, r)
	if !ok {
		return
	}

	var req crashRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.eng.Crash(r.Context(), id, req.Bet, req.CashOut)
	h.writeGamble(w, res, err)
}

func (h *HandlerProvider) PlinkoHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.accountID(w, r)
	if !ok {
		return
	}

	var req plinkoRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.eng.Plinko(r.Context(), id, req.Bet, req.Tier)
	h.writeGamble(w, res, err)
}

func (h *HandlerProvider) LotteryHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.accountID(w, r)
	if !ok {
		return
	}

	var req lotteryRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.eng.Lottery(r.Context(), id, req.Bet, req.Picks)
	h.writeGamble(w, res, err)
}

func (h *HandlerProvider) BlackjackHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.accountID(w, r)
	if !ok {
		return
	}

	var req betRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.eng.Blackjack(r.Context(), id, req.Bet)
	h.writeGamble(w, res, err)
}

func (h *HandlerProvider) ScratchHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.accountID(w, r)
	if !ok {
		return
	}

	var req betRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.eng.Scratch(r.Context(), id, req.Bet)
	h.writeGamble(w, res, err)
}

// --- Mines handlers ---

// MinesStartHandler handles POST /v1/accounts/{accountId}/gamble/mines/start
func (h *HandlerProvider) MinesStartHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.accountID(w, r)
	if !ok {
		return
	}

	var req betRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	state, err := h.eng.MinesStart(r.Context(), id, req.Bet)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, minesStateResponse(state))
}

// MinesRevealHandler handles POST /v1/accounts/{accountId}/gamble/mines/reveal
func (h *HandlerProvider) MinesRevealHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.accountID(w, r)
	if !ok {
		return
	}

	var req minesRevealRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	state, outcome, err := h.eng.MinesReveal(r.Context(), id, req.Tile)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	if outcome != nil {
		out := map[string]any{
			"hazard":      true,
			"hazardTiles": outcome.HazardTiles,
			"amount":      outcome.Amount,
		}
		if outcome.Rescued {
			out["rescued"] = true
			out["balance"] = outcome.Balance
		}
		if len(outcome.Unlocked) > 0 {
			out["unlocked"] = outcome.Unlocked
		}

		writeJSON(w, http.StatusOK, out)
		return
	}

	writeJSON(w, http.StatusOK, minesStateResponse(state))
}

// MinesCashOutHandler handles POST /v1/accounts/{accountId}/gamble/mines/cashout
func (h *HandlerProvider) MinesCashOutHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.accountID(w, r)
	if !ok {
		return
	}

	outcome, err := h.eng.MinesCashOut(r.Context(), id)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	out := map[string]any{
		"amount":  outcome.Amount,
		"balance": outcome.Balance,
	}
	if outcome.Rescued {
		out["rescued"] = true
	}
	if len(outcome.Unlocked) > 0 {
		out["unlocked"] = outcome.Unlocked
	}

	writeJSON(w, http.StatusOK, out)
}

func minesStateResponse(s engine.MinesState) map[string]any {
	return map[string]any{
		"bet":        s.Bet,
		"revealed":   s.Revealed,
		"multiplier": s.Multiplier,
		"payout":     s.Payout,
	}
}

// --- Shared ---

func (h *HandlerProvider) accountID(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	id, err := parseAccountIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid accountId in path")
		return 0, false
	}

	return id, true
}

func (h *HandlerProvider) writeGamble(w http.ResponseWriter, res engine.GambleResult, err error) {
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, gambleResponse(res))
}
