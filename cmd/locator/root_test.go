package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmacy-locator/internal/usecase/dto"
)

func stubLocate(resp *dto.LocatorResponse, got *[]string) locateFunc {
	return func(_ context.Context, situation, location string, radiusM, limit int) *dto.LocatorResponse {
		*got = append(*got, location)
		return resp
	}
}

func TestRun_JSON(t *testing.T) {
	var calls []string
	var out bytes.Buffer
	resp := &dto.LocatorResponse{
		Status:        dto.StatusOK,
		Provider:      "overpass",
		QueryLocation: &dto.QueryLocation{Input: "Paris", Lat: 48.8566, Lon: 2.3522},
		Results:       []dto.PharmacyResult{{Name: "Pharmacie & Co", OSMType: "node", OSMID: 1}},
	}

	err := run(context.Background(), &out, &options{location: "Paris", format: "json"}, stubLocate(resp, &calls))
	require.NoError(t, err)

	assert.Equal(t, []string{"Paris"}, calls)
	assert.Contains(t, out.String(), "Pharmacie & Co")

	var decoded dto.LocatorResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, dto.StatusOK, decoded.Status)
}

func TestRun_Pretty(t *testing.T) {
	var calls []string
	var out bytes.Buffer
	resp := &dto.LocatorResponse{
		Status:        dto.StatusOK,
		QueryLocation: &dto.QueryLocation{Input: "Paris", Lat: 48.8566, Lon: 2.3522},
		Results:       []dto.PharmacyResult{},
	}

	err := run(context.Background(), &out, &options{location: "Paris", format: "Pretty"}, stubLocate(resp, &calls))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.String(), "Top 0 pharmacies near Paris"))
}

func TestRun_ErrorEnvelopeIsJSONEvenWhenPretty(t *testing.T) {
	var calls []string
	var out bytes.Buffer

	err := run(context.Background(), &out, &options{location: "Atlantis", format: "pretty"},
		stubLocate(dto.NewErrorResponse("Could not geocode location"), &calls))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"error","message":"Could not geocode location","results":[]}`, out.String())
}

func TestRun_Validation(t *testing.T) {
	var calls []string
	locate := stubLocate(nil, &calls)

	err := run(context.Background(), &bytes.Buffer{}, &options{location: "  ", format: "json"}, locate)
	assert.EqualError(t, err, "no location provided")

	err = run(context.Background(), &bytes.Buffer{}, &options{location: "Paris", format: "xml"}, locate)
	assert.ErrorContains(t, err, "unknown format")

	assert.Empty(t, calls)
}

func TestRootCmd_RequiresLocation(t *testing.T) {
	cmd := newRootCmd(&bytes.Buffer{})
	cmd.SetArgs([]string{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	assert.ErrorContains(t, err, "location")
}
