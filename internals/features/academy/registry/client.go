// file: internals/features/academy/registry/client.go
package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"golang.org/x/sync/errgroup"
)

/* =========================
   Wire model
   ========================= */

// LogEntry is one raw per-student per-day record from the HRD training
// registry. Values arrive as loosely-typed JSON; the client coerces them
// to trimmed strings so callers never see shape drift.
type LogEntry struct {
	StudentID    string `json:"trneeCstmrId"`
	StudentName  string `json:"cstmrNm"`
	Date         string `json:"atendDe"`
	StatusCode   string `json:"atendSttusCd"`
	StatusName   string `json:"atendSttusNm"`
	CheckInTime  string `json:"lpsilTime"`
	CheckOutTime string `json:"levromTime"`
}

/* =========================
   Client
   ========================= */

const fetchConcurrency = 4

type Client struct {
	httpClient *http.Client
	baseURL    string
	authKey    string
}

func NewClient(baseURL, authKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    baseURL,
		authKey:    authKey,
	}
}

// FetchMonth queries the registry for one (course, round, YYYYMM) chunk.
// Malformed bodies degrade to an empty list; only transport-level failures
// surface as errors.
func (c *Client) FetchMonth(ctx context.Context, courseCodeID, round, yearMonth string) ([]LogEntry, error) {
	q := url.Values{}
	q.Set("returnType", "JSON")
	q.Set("authKey", c.authKey)
	q.Set("srchTrprId", courseCodeID)
	q.Set("srchTrprDegr", round)
	q.Set("outType", "2")
	q.Set("srchTorgId", "student_detail")
	q.Set("atendMo", yearMonth)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return parseMonthBody(body)
}

// FetchRange pulls every month chunk with a bounded fan-out. A failed or
// unparseable chunk counts as zero records for that month (logged for
// operability — a registry outage here silently looks like absences, see
// DESIGN.md); only cancellation aborts the whole range.
func (c *Client) FetchRange(ctx context.Context, courseCodeID, round string, months []string) ([]LogEntry, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)

	chunks := make([][]LogEntry, len(months))
	for i, m := range months {
		i, m := i, m
		g.Go(func() error {
			logs, err := c.FetchMonth(gctx, courseCodeID, round, m)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				log.Printf("[HRD] month %s fetch failed, counting zero records: %v", m, err)
				return nil
			}
			chunks[i] = logs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []LogEntry
	for _, chunk := range chunks {
		all = append(all, chunk...)
	}
	return all, nil
}

/* =========================
   Defensive body parsing
   ========================= */

// The registry wraps its payload in a double-encoded JSON string and
// sometimes answers with an HTML error page instead.
type monthEnvelope struct {
	ReturnJSON string `json:"returnJSON"`
}

func parseMonthBody(body []byte) ([]LogEntry, error) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" || strings.HasPrefix(trimmed, "<") {
		return nil, nil
	}

	var env monthEnvelope
	if err := sonic.Unmarshal([]byte(trimmed), &env); err != nil {
		return nil, fmt.Errorf("registry envelope: %w", err)
	}
	if env.ReturnJSON == "" {
		return nil, nil
	}

	var payload struct {
		AtabList json.RawMessage `json:"atabList"`
	}
	if err := sonic.Unmarshal([]byte(env.ReturnJSON), &payload); err != nil {
		return nil, fmt.Errorf("registry payload: %w", err)
	}
	if len(payload.AtabList) == 0 || string(payload.AtabList) == "null" {
		return nil, nil
	}

	// atabList is an array for multi-row months but a bare object when the
	// month holds a single record.
	var items []map[string]any
	if err := sonic.Unmarshal(payload.AtabList, &items); err != nil {
		var single map[string]any
		if err2 := sonic.Unmarshal(payload.AtabList, &single); err2 != nil {
			return nil, fmt.Errorf("registry atabList: %w", err)
		}
		items = append(items, single)
	}

	out := make([]LogEntry, 0, len(items))
	for _, it := range items {
		out = append(out, LogEntry{
			StudentID:    strField(it, "trneeCstmrId"),
			StudentName:  strField(it, "cstmrNm"),
			Date:         strField(it, "atendDe"),
			StatusCode:   strField(it, "atendSttusCd"),
			StatusName:   strField(it, "atendSttusNm"),
			CheckInTime:  strField(it, "lpsilTime"),
			CheckOutTime: strField(it, "levromTime"),
		})
	}
	return out, nil
}

// strField coerces string or numeric JSON values to their trimmed string form.
func strField(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		if v == math.Trunc(v) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}
