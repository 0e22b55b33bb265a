package api

import (
	"fmt"
	"net/http"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/go-chi/chi/v5"

	"github.com/openalpha/stake-farm/x/farm/types"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

// PoolsResponse is a page of pools
type PoolsResponse struct {
	Pools  []types.StakePool `json:"pools"`
	Total  uint64            `json:"total"`
	Offset uint64            `json:"offset"`
	Limit  uint64            `json:"limit"`
}

// PoolResponse is a pool with its escrow balances
type PoolResponse struct {
	Height int64             `json:"height"`
	Pool   *types.StakePool  `json:"pool"`
	Vaults *types.PoolVaults `json:"vaults"`
}

// PositionsResponse lists the positions of one pool
type PositionsResponse struct {
	PoolIndex uint64           `json:"pool_index"`
	Positions []types.Position `json:"positions"`
}

// PositionResponse is a position with the reward it could claim now
type PositionResponse struct {
	Position      *types.Position `json:"position"`
	PendingReward uint64          `json:"pending_reward"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	height, err := s.reader.Height(r.Context())
	if err != nil {
		s.logger.Error("health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status": "unavailable",
			"error":  "node unreachable",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "healthy",
		"height": height,
	})
}

func (s *Server) handleListPools(w http.ResponseWriter, r *http.Request) {
	offset, err := queryUint(r, "offset", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	limit, err := queryUint(r, "limit", defaultPageLimit)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if limit == 0 || limit > maxPageLimit {
		limit = maxPageLimit
	}

	pools, total, err := s.reader.Pools(r.Context(), offset, limit)
	if err != nil {
		s.writeReaderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, PoolsResponse{
		Pools:  pools,
		Total:  total,
		Offset: offset,
		Limit:  limit,
	})
}

func (s *Server) handleGetPool(w http.ResponseWriter, r *http.Request) {
	index, err := poolIndexParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	pool, height, err := s.reader.Pool(r.Context(), index)
	if err != nil {
		s.writeReaderError(w, err)
		return
	}
	vaults, err := s.reader.Vaults(r.Context(), index)
	if err != nil {
		s.writeReaderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, PoolResponse{
		Height: height,
		Pool:   pool,
		Vaults: vaults,
	})
}

func (s *Server) handleListPositions(w http.ResponseWriter, r *http.Request) {
	index, err := poolIndexParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, _, err := s.reader.Pool(r.Context(), index); err != nil {
		s.writeReaderError(w, err)
		return
	}
	positions, err := s.reader.Positions(r.Context(), index)
	if err != nil {
		s.writeReaderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, PositionsResponse{
		PoolIndex: index,
		Positions: positions,
	})
}

func (s *Server) handleGetPosition(w http.ResponseWriter, r *http.Request) {
	index, err := poolIndexParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	depositor, err := sdk.AccAddressFromBech32(chi.URLParam(r, "depositor"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid depositor address")
		return
	}

	pos, err := s.reader.Position(r.Context(), index, depositor)
	if err != nil {
		s.writeReaderError(w, err)
		return
	}
	pending, err := s.reader.PendingReward(r.Context(), index, depositor)
	if err != nil {
		s.writeReaderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, PositionResponse{
		Position:      pos,
		PendingReward: pending,
	})
}

// writeReaderError maps missing records to 404 and hides everything else
// behind a 500
func (s *Server) writeReaderError(w http.ResponseWriter, err error) {
	switch {
	case errorsmod.IsOf(err, types.ErrPoolNotFound, types.ErrPositionNotFound, types.ErrRegistryNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		s.logger.Error("farm query failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func poolIndexParam(r *http.Request) (uint64, error) {
	index, err := strconv.ParseUint(chi.URLParam(r, "index"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid pool index %q", chi.URLParam(r, "index"))
	}
	return index, nil
}

func queryUint(r *http.Request, name string, def uint64) (uint64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return v, nil
}
