package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"careboard/internal/domain"
)

// listingFiles maps each entity to its catalog file.
var listingFiles = map[domain.Entity]string{
	domain.EntityHospital:  "hospitals.json",
	domain.EntityDoctor:    "doctors.json",
	domain.EntityTreatment: "treatments.json",
	domain.EntityBooking:   "bookings.json",
	domain.EntityContact:   "contacts.json",
}

// entityForFile returns the entity whose listing lives in the named file.
func entityForFile(name string) (domain.Entity, bool) {
	base := filepath.Base(name)
	for e, f := range listingFiles {
		if f == base {
			return e, true
		}
	}
	return "", false
}

// loadTable reads one entity's listing file and builds its display table.
// A missing file yields an empty table, not an error: pages render empty
// until the collaborator ships data.
func loadTable(dir string, e domain.Entity) (domain.Table, error) {
	t := emptyTable(e)

	data, err := os.ReadFile(filepath.Join(dir, listingFiles[e]))
	if os.IsNotExist(err) {
		return t, nil
	}
	if err != nil {
		return t, fmt.Errorf("failed to read %s listing: %w", e, err)
	}

	switch e {
	case domain.EntityHospital:
		var recs []domain.Hospital
		if err := json.Unmarshal(data, &recs); err != nil {
			return t, fmt.Errorf("failed to parse %s listing: %w", e, err)
		}
		for _, h := range recs {
			t.Rows = append(t.Rows, domain.Row{
				Key:   strconv.Itoa(h.ID),
				Image: h.Image,
				Cells: []string{
					strconv.Itoa(h.ID),
					featured(h.Name, h.IsFeatured),
					h.Location,
					fmtInt(h.BedCount),
					fmtInt(h.EstablishedYear),
					fmtRating(h.Rating),
				},
			})
		}

	case domain.EntityDoctor:
		var recs []domain.Doctor
		if err := json.Unmarshal(data, &recs); err != nil {
			return t, fmt.Errorf("failed to parse %s listing: %w", e, err)
		}
		for _, d := range recs {
			t.Rows = append(t.Rows, domain.Row{
				Key:   strconv.Itoa(d.ID),
				Image: d.Image,
				Cells: []string{
					strconv.Itoa(d.ID),
					featured(d.Name, d.IsFeatured),
					d.Specialization,
					fmtInt(d.ExperienceYears),
					fmtMoney(d.ConsultancyFee),
					fmtRating(d.Rating),
				},
			})
		}

	case domain.EntityTreatment:
		var recs []domain.Treatment
		if err := json.Unmarshal(data, &recs); err != nil {
			return t, fmt.Errorf("failed to parse %s listing: %w", e, err)
		}
		for _, tr := range recs {
			t.Rows = append(t.Rows, domain.Row{
				Key:   strconv.Itoa(tr.ID),
				Image: tr.Image,
				Cells: []string{
					strconv.Itoa(tr.ID),
					tr.Name,
					tr.TreatmentType,
					tr.Hospital,
					fmtMoney(tr.PriceMin),
					fmtRating(tr.Rating),
				},
			})
		}

	case domain.EntityBooking:
		var recs []domain.Booking
		if err := json.Unmarshal(data, &recs); err != nil {
			return t, fmt.Errorf("failed to parse %s listing: %w", e, err)
		}
		for _, b := range recs {
			t.Rows = append(t.Rows, domain.Row{
				Key: strconv.Itoa(b.ID),
				Cells: []string{
					strconv.Itoa(b.ID),
					b.FirstName + " " + b.LastName,
					b.Email,
					b.Treatment,
					b.Budget,
					b.Status,
					b.CreatedAt,
				},
			})
		}

	case domain.EntityContact:
		var recs []domain.Contact
		if err := json.Unmarshal(data, &recs); err != nil {
			return t, fmt.Errorf("failed to parse %s listing: %w", e, err)
		}
		for _, ct := range recs {
			read := "no"
			if ct.IsRead {
				read = "yes"
			}
			t.Rows = append(t.Rows, domain.Row{
				Key: strconv.Itoa(ct.ID),
				Cells: []string{
					strconv.Itoa(ct.ID),
					ct.FirstName + " " + ct.LastName,
					ct.Email,
					ct.Subject,
					ct.ServiceType,
					read,
					ct.CreatedAt,
				},
			})
		}
	}

	return t, nil
}

// emptyTable returns the titled, columned shell for an entity.
func emptyTable(e domain.Entity) domain.Table {
	t := domain.Table{Entity: e}
	switch e {
	case domain.EntityHospital:
		t.Title = "Hospitals"
		t.Columns = []string{"ID", "Name", "Location", "Beds", "Est.", "Rating"}
	case domain.EntityDoctor:
		t.Title = "Doctors"
		t.Columns = []string{"ID", "Name", "Specialization", "Exp.", "Fee", "Rating"}
	case domain.EntityTreatment:
		t.Title = "Treatments"
		t.Columns = []string{"ID", "Name", "Type", "Hospital", "Price", "Rating"}
	case domain.EntityBooking:
		t.Title = "Bookings"
		t.Columns = []string{"ID", "Patient", "Email", "Treatment", "Budget", "Status", "Created"}
	case domain.EntityContact:
		t.Title = "Contacts"
		t.Columns = []string{"ID", "Name", "Email", "Subject", "Service", "Read", "Created"}
	}
	return t
}

// deleteRecord removes the record with the given id from the entity's
// listing file and rewrites it. Records are kept as raw JSON so fields we
// do not model survive the rewrite.
func deleteRecord(dir string, e domain.Entity, key string) error {
	path := filepath.Join(dir, listingFiles[e])

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s listing: %w", e, err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse %s listing: %w", e, err)
	}

	kept := make([]json.RawMessage, 0, len(raw))
	found := false
	for _, rec := range raw {
		var probe struct {
			ID json.Number `json:"id"`
		}
		if err := json.Unmarshal(rec, &probe); err == nil && probe.ID.String() == key {
			found = true
			continue
		}
		kept = append(kept, rec)
	}
	if !found {
		return fmt.Errorf("%s #%s not found", e, key)
	}

	out, err := json.MarshalIndent(kept, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s listing: %w", e, err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("failed to write %s listing: %w", e, err)
	}
	return nil
}

func featured(name string, is bool) string {
	if is {
		return name + " ★"
	}
	return name
}

func fmtInt(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func fmtRating(r float64) string {
	if r == 0 {
		return ""
	}
	return strconv.FormatFloat(r, 'f', 1, 64)
}

func fmtMoney(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
