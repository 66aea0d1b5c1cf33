// internal/app/features/members/records.go
package members

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	memberstore "github.com/dalemusser/facultyhub/internal/app/store/members"
	"github.com/dalemusser/facultyhub/internal/app/system/textclean"
	"github.com/dalemusser/facultyhub/internal/app/system/timeouts"
	"github.com/dalemusser/facultyhub/internal/app/system/webjson"
	"github.com/dalemusser/facultyhub/internal/domain/models"
	"go.uber.org/zap"
)

// validateAppointment checks an appointment write against the current
// term index. Stored data never carries a dangling or inverted term
// range; the engine can then tolerate overlaps without re-validating.
func (h *Handler) validateAppointment(a models.Appointment) error {
	snap := h.Snapshots.Current()
	if snap == nil {
		return errors.New("roster data not loaded yet")
	}
	idx := snap.Index()

	if a.TermStart == "" {
		return errors.New("term_start is required")
	}
	if !idx.Has(a.TermStart) {
		return fmt.Errorf("unknown term_start %q", a.TermStart)
	}
	if a.TermEnd != "" {
		if !idx.Has(a.TermEnd) {
			return fmt.Errorf("unknown term_end %q", a.TermEnd)
		}
		ok, err := idx.LTE(a.TermStart, a.TermEnd)
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("term_start must not come after term_end")
		}
	}
	if !models.IsValidRank(a.Rank) {
		return fmt.Errorf("invalid rank %q", a.Rank)
	}
	return nil
}

// validateTermRef checks the optional term tag on activities/courses.
func (h *Handler) validateTermRef(termID string) error {
	if termID == "" {
		return nil
	}
	snap := h.Snapshots.Current()
	if snap == nil {
		return errors.New("roster data not loaded yet")
	}
	if !snap.Index().Has(termID) {
		return fmt.Errorf("unknown term %q", termID)
	}
	return nil
}

// HandleAddAppointment handles POST /{id}/appointments.
func (h *Handler) HandleAddAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := memberIDParam(w, r)
	if !ok {
		return
	}

	var in appointmentInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		webjson.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	a := models.Appointment{
		TermStart:    in.TermStart,
		TermEnd:      in.TermEnd,
		Rank:         in.Rank,
		DepartmentID: in.DepartmentID,
		Branch:       textclean.Clean(in.Branch),
	}
	if err := h.validateAppointment(a); err != nil {
		webjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short)
	defer cancel()

	created, err := h.Members.AddAppointment(ctx, id, a)
	if err != nil {
		h.writeSubRecordError(w, "appointment", id.Hex(), err)
		return
	}
	if !h.reload(w, r, "appointment add") {
		return
	}
	webjson.Write(w, http.StatusCreated, created)
}

// HandleAddActivity handles POST /{id}/activities.
func (h *Handler) HandleAddActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := memberIDParam(w, r)
	if !ok {
		return
	}

	var in activityInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		webjson.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	a := models.Activity{
		Title:  textclean.Clean(in.Title),
		Type:   textclean.Clean(in.Type),
		Date:   in.Date,
		TermID: in.TermID,
	}
	if a.Title == "" {
		webjson.Error(w, http.StatusBadRequest, "activity title is required")
		return
	}
	if err := h.validateTermRef(a.TermID); err != nil {
		webjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short)
	defer cancel()

	created, err := h.Members.AddActivity(ctx, id, a)
	if err != nil {
		h.writeSubRecordError(w, "activity", id.Hex(), err)
		return
	}
	if !h.reload(w, r, "activity add") {
		return
	}
	webjson.Write(w, http.StatusCreated, created)
}

// HandleAddPublication handles POST /{id}/publications.
func (h *Handler) HandleAddPublication(w http.ResponseWriter, r *http.Request) {
	id, ok := memberIDParam(w, r)
	if !ok {
		return
	}

	var in publicationInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		webjson.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	p := models.Publication{
		Title: textclean.Clean(in.Title),
		Type:  textclean.Clean(in.Type),
		Year:  in.Year,
	}
	if p.Title == "" {
		webjson.Error(w, http.StatusBadRequest, "publication title is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short)
	defer cancel()

	created, err := h.Members.AddPublication(ctx, id, p)
	if err != nil {
		h.writeSubRecordError(w, "publication", id.Hex(), err)
		return
	}
	if !h.reload(w, r, "publication add") {
		return
	}
	webjson.Write(w, http.StatusCreated, created)
}

// HandleAddCourse handles POST /{id}/courses.
func (h *Handler) HandleAddCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := memberIDParam(w, r)
	if !ok {
		return
	}

	var in courseInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		webjson.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	c := models.Course{
		Name:   textclean.Clean(in.Name),
		Code:   textclean.Clean(in.Code),
		TermID: in.TermID,
	}
	if c.Name == "" {
		webjson.Error(w, http.StatusBadRequest, "course name is required")
		return
	}
	if err := h.validateTermRef(c.TermID); err != nil {
		webjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short)
	defer cancel()

	created, err := h.Members.AddCourse(ctx, id, c)
	if err != nil {
		h.writeSubRecordError(w, "course", id.Hex(), err)
		return
	}
	if !h.reload(w, r, "course add") {
		return
	}
	webjson.Write(w, http.StatusCreated, created)
}

func (h *Handler) writeSubRecordError(w http.ResponseWriter, kind, memberID string, err error) {
	if errors.Is(err, memberstore.ErrMemberNotFound) {
		webjson.Error(w, http.StatusNotFound, "member not found")
		return
	}
	h.Log.Error("sub-record write failed",
		zap.String("kind", kind),
		zap.String("member_id", memberID),
		zap.Error(err))
	webjson.Error(w, http.StatusInternalServerError, "could not save "+kind)
}
