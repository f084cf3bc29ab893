package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/wagerworks/ecosim/internal/engine"
	"github.com/wagerworks/ecosim/internal/engine/games"
	"github.com/wagerworks/ecosim/internal/repos/accounts"
)

// HandlerProvider wraps the economy engine and exposes HTTP handlers.
type HandlerProvider struct {
	eng *engine.Engine
}

// NewHandler returns a new Handler provider.
func NewHandler(eng *engine.Engine) *HandlerProvider {
	return &HandlerProvider{eng: eng}
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode JSON response", "error", err)

		http.Error(w, `{"error":"internal json encode failure"}`, http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeEngineError maps domain errors onto HTTP statuses. Integrity
// rejections share the throttling status and wording so the screening
// heuristics are not distinguishable from rate limiting.
func writeEngineError(w http.ResponseWriter, err error) {
	var cdErr *engine.CooldownError
	if errors.As(err, &cdErr) {
		w.Header().Set("Retry-After", strconv.FormatInt(int64(cdErr.Remaining.Seconds())+1, 10))
		writeError(w, http.StatusTooManyRequests, "too many requests")
		return
	}

	switch {
	case errors.Is(err, engine.ErrRejected):
		writeError(w, http.StatusTooManyRequests, "too many requests")
	case errors.Is(err, accounts.ErrNotFound), errors.Is(err, games.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, accounts.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "account already exists")
	case errors.Is(err, engine.ErrInsufficientFunds):
		writeError(w, http.StatusConflict, "insufficient funds")
	case errors.Is(err, engine.ErrVaultCapacity):
		writeError(w, http.StatusConflict, "vault capacity exceeded")
	case errors.Is(err, games.ErrSessionActive):
		writeError(w, http.StatusConflict, "session already active")
	case errors.Is(err, engine.ErrInvalidAmount),
		errors.Is(err, engine.ErrInvalidBet),
		errors.Is(err, engine.ErrUnknownAction),
		errors.Is(err, accounts.ErrSameAccount),
		errors.Is(err, games.ErrInvalidChoice),
		errors.Is(err, games.ErrTileOutOfRange),
		errors.Is(err, games.ErrTileRevealed),
		errors.Is(err, games.ErrNoReveals):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// parseAccountIDFromPath reads `{accountId}` from chi routes like:
//
//	GET  /v1/accounts/{accountId}
//	POST /v1/accounts/{accountId}/work
func parseAccountIDFromPath(r *http.Request) (uint64, error) {
	idStr := chi.URLParam(r, "accountId")
	if idStr == "" {
		return 0, fmt.Errorf("missing accountId")
	}

	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid accountId: %w", err)
	}
	if id == 0 {
		return 0, fmt.Errorf("invalid accountId: must be positive")
	}

	return id, nil
}

// decodeBody reads a capped JSON body into dst, rejecting unknown fields.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("empty body")
		}
		return fmt.Errorf("invalid JSON")
	}

	return nil
}

func profileResponse(p engine.Profile) map[string]any {
	return map[string]any{
		"accountId":     p.ID,
		"balance":       p.Balance,
		"vault":         p.Vault,
		"vaultCapacity": p.VaultCapacity,
		"level":         p.Level,
		"experience":    p.Experience,
		"inventory":     p.Inventory,
		"achievements":  p.Achievements,
	}
}

func actionResponse(res engine.ActionResult) map[string]any {
	out := map[string]any{
		"success":    res.Success,
		"entry":      res.Entry,
		"amount":     res.Amount,
		"xp":         res.XP,
		"balance":    res.Balance,
		"level":      res.Level,
		"experience": res.Experience,
		"boosted":    res.Boosted,
	}
	if res.ItemFound != "" {
		out["itemFound"] = res.ItemFound
	}
	if res.LeveledUp {
		out["leveledUp"] = true
	}
	if len(res.Unlocked) > 0 {
		out["unlocked"] = res.Unlocked
	}

	return out
}

func gambleResponse(res engine.GambleResult) map[string]any {
	out := map[string]any{
		"win":     res.Win,
		"amount":  res.Amount,
		"balance": res.Balance,
		"details": res.Details,
	}
	if res.Rescued {
		out["rescued"] = true
	}
	if len(res.Unlocked) > 0 {
		out["unlocked"] = res.Unlocked
	}

	return out
}

// --- Account handlers ---

type createAccountRequest struct {
	AccountID uint64 `json:"accountId"`
}

// CreateAccountHandler handles POST /v1/accounts
func (h *HandlerProvider) CreateAccountHandler(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.AccountID == 0 {
		writeError(w, http.StatusBadRequest, "accountId required")
		return
	}

	p, err := h.eng.CreateAccount(r.Context(), req.AccountID)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, profileResponse(p))
}

// GetAccountHandler handles GET /v1/accounts/{accountId}
func (h *HandlerProvider) GetAccountHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseAccountIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid accountId in path")
		return
	}

	p, err := h.eng.Balance(r.Context(), id)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profileResponse(p))
}

// HistoryHandler handles GET /v1/accounts/{accountId}/history
func (h *HandlerProvider) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseAccountIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid accountId in path")
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > 200 {
			writeError(w, http.StatusBadRequest, "limit must be 1..200")
			return
		}
	}

	recs, err := h.eng.History(r.Context(), id, limit)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	out := make([]map[string]any, 0, len(recs))
	for _, rec := range recs {
		entry := map[string]any{
			"id":          rec.ID.String(),
			"category":    rec.Category,
			"amount":      rec.Amount,
			"description": rec.Description,
			"at":          rec.At,
		}
		if rec.CounterpartID != nil {
			entry["counterpartId"] = *rec.CounterpartID
		}
		out = append(out, entry)
	}

	writeJSON(w, http.StatusOK, map[string]any{"records": out})
}

// --- Action handlers ---

// WorkHandler handles POST /v1/accounts/{accountId}/work
func (h *HandlerProvider) WorkHandler(w http.ResponseWriter, r *http.Request) {
	h.runAction(w, r, h.eng.Work)
}

// CrimeHandler handles POST /v1/accounts/{accountId}/crime
func (h *HandlerProvider) CrimeHandler(w http.ResponseWriter, r *http.Request) {
	h.runAction(w, r, h.eng.Crime)
}

// ForageHandler handles POST /v1/accounts/{accountId}/forage/{area}
func (h *HandlerProvider) ForageHandler(w http.ResponseWriter, r *http.Request) {
	area := chi.URLParam(r, "area")

	h.runAction(w, r, func(ctx context.Context, id uint64) (engine.ActionResult, error) {
		return h.eng.Forage(ctx, id, area)
	})
}

func (h *HandlerProvider) runAction(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, id uint64) (engine.ActionResult, error)) {
	id, err := parseAccountIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid accountId in path")
		return
	}

	res, err := fn(r.Context(), id)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, actionResponse(res))
}
