package api

import (
	"context"
	"net/http"

	"github.com/wagerworks/ecosim/internal/engine"
)

// --- Transfer and vault handlers ---

type transferRequest struct {
	ToID   uint64 `json:"toId"`
	Amount int64  `json:"amount"`
}

type robRequest struct {
	VictimID uint64 `json:"victimId"`
}

type amountRequest struct {
	Amount int64 `json:"amount"`
}

// TransferHandler handles POST /v1/accounts/{accountId}/transfer
func (h *HandlerProvider) TransferHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.accountID(w, r)
	if !ok {
		return
	}

	var req transferRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.ToID == 0 {
		writeError(w, http.StatusBadRequest, "toId required")
		return
	}

	res, err := h.eng.GiveCoins(r.Context(), id, req.ToID, req.Amount)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	out := map[string]any{
		"amount":  res.Amount,
		"balance": res.SenderBalance,
	}
	if len(res.Unlocked) > 0 {
		out["unlocked"] = res.Unlocked
	}

	writeJSON(w, http.StatusOK, out)
}

// RobHandler handles POST /v1/accounts/{accountId}/rob
func (h *HandlerProvider) RobHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.accountID(w, r)
	if !ok {
		return
	}

	var req robRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.VictimID == 0 {
		writeError(w, http.StatusBadRequest, "victimId required")
		return
	}

	res, err := h.eng.Rob(r.Context(), id, req.VictimID)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": res.Success,
		"amount":  res.Amount,
		"balance": res.RobberBalance,
	})
}

// DepositHandler handles POST /v1/accounts/{accountId}/vault/deposit
func (h *HandlerProvider) DepositHandler(w http.ResponseWriter, r *http.Request) {
	h.vaultMove(w, r, h.eng.Deposit)
}

// WithdrawHandler handles POST /v1/accounts/{accountId}/vault/withdraw
func (h *HandlerProvider) WithdrawHandler(w http.ResponseWriter, r *http.Request) {
	h.vaultMove(w, r, h.eng.Withdraw)
}

func (h *HandlerProvider) vaultMove(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, id uint64, amount int64) (engine.VaultResult, error)) {
	id, ok := h.accountID(w, r)
	if !ok {
		return
	}

	var req amountRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := fn(r.Context(), id, req.Amount)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	out := map[string]any{
		"balance":  res.Balance,
		"vault":    res.Vault,
		"capacity": res.Capacity,
	}
	if len(res.Unlocked) > 0 {
		out["unlocked"] = res.Unlocked
	}

	writeJSON(w, http.StatusOK, out)
}
