package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/siteguard/siteguard-api/internal/dto"
	"github.com/siteguard/siteguard-api/internal/models"
)

func TestWorkspaceHandler_Create_SeedsDefaultInventory(t *testing.T) {
	env := setupTestEnv(t)
	token := env.signupUser(t, "Owner", "owner@example.com")

	w := env.do(t, http.MethodPost, "/workspaces", token, map[string]string{
		"name":     "Riverside Tower",
		"location": "Springfield",
		"stage":    "Foundation",
		"type":     "Residential",
		"budget":   "1,500,000 USD",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.WorkspaceDTO
	decodeData(t, w, &resp)
	require.Equal(t, models.WorkspaceUnderConstruction, resp.Status)
	require.Equal(t, 0, resp.Progress)
	require.Equal(t, 100, resp.SafetyScore)
	require.Nil(t, resp.ArchitecturePlan)
	require.Empty(t, resp.SafetyReports)

	require.Len(t, resp.Resources, 5)
	seen := map[string]bool{}
	for _, item := range resp.Resources {
		require.Equal(t, models.ResourceStatusLow, item.Status)
		require.Zero(t, item.Quantity)
		require.NotEmpty(t, item.ID)
		require.False(t, seen[item.ID], "resource ids must be distinct")
		seen[item.ID] = true
	}
}

func TestWorkspaceHandler_Create_MissingFields(t *testing.T) {
	env := setupTestEnv(t)
	token := env.signupUser(t, "Owner", "owner@example.com")

	w := env.do(t, http.MethodPost, "/workspaces", token, map[string]string{
		"name":     "Riverside Tower",
		"location": "Springfield",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

// Name length is bounded in runes, so multibyte names count by character.
func TestWorkspaceHandler_NameLengthCountsRunes(t *testing.T) {
	env := setupTestEnv(t)
	token := env.signupUser(t, "Owner", "owner@example.com")

	payload := func(name string) map[string]string {
		return map[string]string{
			"name":     name,
			"location": "Springfield",
			"stage":    "Foundation",
			"type":     "Residential",
			"budget":   "1,500,000 USD",
		}
	}

	// Two runes but six bytes: still too short.
	tooShort := env.do(t, http.MethodPost, "/workspaces", token, payload("東京"))
	require.Equal(t, http.StatusBadRequest, tooShort.Code)

	resp := decodeEnvelope(t, tooShort)
	require.Equal(t, "VALIDATION_ERROR", resp.Type)

	ok := env.do(t, http.MethodPost, "/workspaces", token, payload("東京タワー"))
	require.Equal(t, http.StatusCreated, ok.Code)

	var created dto.WorkspaceDTO
	decodeData(t, ok, &created)
	require.Equal(t, "東京タワー", created.Name)

	rename := env.do(t, http.MethodPut, fmt.Sprintf("/workspaces/%d", created.ID), token, map[string]string{
		"name": "東京",
	})
	require.Equal(t, http.StatusBadRequest, rename.Code)
}

func TestWorkspaceHandler_Update_ShallowMerge(t *testing.T) {
	env := setupTestEnv(t)
	token := env.signupUser(t, "Owner", "owner@example.com")
	id := env.createWorkspace(t, token, "Riverside Tower")

	w := env.do(t, http.MethodPut, fmt.Sprintf("/workspaces/%d", id), token, map[string]string{
		"stage": "Framing",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.WorkspaceDTO
	decodeData(t, w, &resp)
	require.Equal(t, "Framing", resp.Stage)
	require.Equal(t, "Riverside Tower", resp.Name, "unprovided fields stay untouched")
	require.Equal(t, "Springfield", resp.Location)
}

func TestWorkspaceHandler_SetProgress(t *testing.T) {
	env := setupTestEnv(t)
	token := env.signupUser(t, "Owner", "owner@example.com")
	id := env.createWorkspace(t, token, "Riverside Tower")

	w := env.do(t, http.MethodPatch, fmt.Sprintf("/workspaces/%d/progress", id), token, map[string]int{
		"progress": 42,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.WorkspaceDTO
	decodeData(t, w, &resp)
	require.Equal(t, 42, resp.Progress)

	outOfRange := env.do(t, http.MethodPatch, fmt.Sprintf("/workspaces/%d/progress", id), token, map[string]int{
		"progress": 101,
	})
	require.Equal(t, http.StatusBadRequest, outOfRange.Code)
}

func TestWorkspaceHandler_ToggleStatus_ForcesProgress(t *testing.T) {
	env := setupTestEnv(t)
	token := env.signupUser(t, "Owner", "owner@example.com")
	id := env.createWorkspace(t, token, "Riverside Tower")

	w := env.do(t, http.MethodPatch, fmt.Sprintf("/workspaces/%d/progress", id), token, map[string]int{
		"progress": 12,
	})
	require.Equal(t, http.StatusOK, w.Code)

	toggled := env.do(t, http.MethodPatch, fmt.Sprintf("/workspaces/%d/status", id), token, nil)
	require.Equal(t, http.StatusOK, toggled.Code)

	var resp dto.WorkspaceDTO
	decodeData(t, toggled, &resp)
	require.Equal(t, models.WorkspaceFinished, resp.Status)
	require.Equal(t, 100, resp.Progress, "finishing forces progress to 100")

	back := env.do(t, http.MethodPatch, fmt.Sprintf("/workspaces/%d/status", id), token, nil)
	require.Equal(t, http.StatusOK, back.Code)

	decodeData(t, back, &resp)
	require.Equal(t, models.WorkspaceUnderConstruction, resp.Status)
	require.Equal(t, 100, resp.Progress, "reopening does not reset progress")
}

func TestWorkspaceHandler_Delete(t *testing.T) {
	env := setupTestEnv(t)
	token := env.signupUser(t, "Owner", "owner@example.com")
	id := env.createWorkspace(t, token, "Riverside Tower")

	w := env.do(t, http.MethodDelete, fmt.Sprintf("/workspaces/%d", id), token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Empty(t, w.Body.String())

	gone := env.do(t, http.MethodGet, fmt.Sprintf("/workspaces/%d", id), token, nil)
	require.Equal(t, http.StatusNotFound, gone.Code)
}

// A workspace owned by someone else must be indistinguishable from one that
// does not exist: 404 either way, never 403.
func TestWorkspaceHandler_OwnershipScoping(t *testing.T) {
	env := setupTestEnv(t)
	ownerToken := env.signupUser(t, "Owner", "owner@example.com")
	intruderToken := env.signupUser(t, "Intruder", "intruder@example.com")
	id := env.createWorkspace(t, ownerToken, "Riverside Tower")

	existing := env.do(t, http.MethodGet, fmt.Sprintf("/workspaces/%d", id), intruderToken, nil)
	missing := env.do(t, http.MethodGet, "/workspaces/999999", intruderToken, nil)

	require.Equal(t, http.StatusNotFound, existing.Code)
	require.Equal(t, http.StatusNotFound, missing.Code)
	require.JSONEq(t, existing.Body.String(), missing.Body.String())

	list := env.do(t, http.MethodGet, "/workspaces", intruderToken, nil)
	require.Equal(t, http.StatusOK, list.Code)
	var items []dto.WorkspaceListItemDTO
	decodeData(t, list, &items)
	require.Empty(t, items)
}
