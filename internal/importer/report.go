package importer

import (
	"encoding/json"
	"fmt"
	"io"

	"partsimport/internal/model"
)

// WriteSummary prints the human-readable result block.
func WriteSummary(w io.Writer, r model.ImportResult) error {
	if !r.Success {
		_, err := fmt.Fprintf(w, "Import failed\n  Error kind:     %s\n  Error:          %s\n", r.ErrorKind, r.Error)
		return err
	}

	mode := "live"
	if r.DryRun {
		mode = "dry run"
	}
	billingPrice := r.BillingPriceID
	if billingPrice == "" {
		billingPrice = "-"
	}

	_, err := fmt.Fprintf(w,
		"Import succeeded\n"+
			"  SKU:            %s\n"+
			"  Name:           %s\n"+
			"  Sell price:     %s\n"+
			"  Cost estimate:  %s\n"+
			"  Billing price:  %s\n"+
			"  Mode:           %s\n",
		r.SKU, r.Name, money(r.SellPrice), money(r.CostEstimate), billingPrice, mode)
	return err
}

func WriteJSON(w io.Writer, r model.ImportResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func money(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("$%.2f", *v)
}
