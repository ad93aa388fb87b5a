package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// slipPrefix is the fixed company code leading every loading slip number.
const slipPrefix = "TPK"

// financialYearLabel returns the two-digit Indian financial year label for a
// date, e.g. 2025-04-01 -> "25-26" and 2025-03-31 -> "24-25". The financial
// year runs April 1 through March 31.
func financialYearLabel(at time.Time) string {
	year := at.Year()
	if at.Month() >= time.April {
		return fmt.Sprintf("%02d-%02d", year%100, (year+1)%100)
	}
	return fmt.Sprintf("%02d-%02d", (year-1)%100, year%100)
}

// NextSlipNumber computes the next available loading slip number for the
// current financial year, e.g. TPK/24-25/00007. It is a pure read: nothing
// is reserved until a receipt carrying the number is persisted, and the
// unique index on loading_slip_no is the sole backstop against two callers
// racing for the same number. Sequences past 99999 simply grow to six or
// more digits.
func (s *receiptService) NextSlipNumber(ctx context.Context) (string, error) {
	label := financialYearLabel(s.now())
	prefix := slipPrefix + "/" + label + "/"

	latest, err := s.repo.MaxSlipNumberWithPrefix(ctx, prefix)
	if err != nil {
		return "", fmt.Errorf("failed to query latest slip number: %w", err)
	}

	next := 1
	if latest != "" {
		parts := strings.Split(latest, "/")
		if len(parts) == 3 {
			if seq, parseErr := strconv.Atoi(parts[2]); parseErr == nil {
				next = seq + 1
			}
		}
	}

	return fmt.Sprintf("%s%05d", prefix, next), nil
}
