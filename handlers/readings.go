package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Yasiru17-Induwara/cashier-repository/models"
)

// ListUnbilledReadings lists readings that have no bill yet
// @Summary      List unbilled readings
// @Description  Get all meter readings without a corresponding bill, with the owning customer resolved via the meter.
// @Tags         readings
// @Produce      json
// @Success      200  {object}  Response{data=[]models.UnbilledReading}
// @Router       /api/unbilled-readings [get]
// @Security     BasicAuth
func ListUnbilledReadings(w http.ResponseWriter, r *http.Request) {
	rows, err := DB.Query(`SELECT r.reading_id, r.meter_id, m.customer_id
		FROM meter_readings r
		JOIN meters m ON r.meter_id = m.meter_id
		WHERE NOT EXISTS (SELECT 1 FROM bills b WHERE b.reading_id = r.reading_id)
		ORDER BY r.reading_date, r.reading_id`)
	if err != nil {
		slog.Error("list unbilled readings", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve unbilled readings.")
		return
	}
	defer rows.Close()

	var readings []models.UnbilledReading
	for rows.Next() {
		var ur models.UnbilledReading
		if err := rows.Scan(&ur.ReadingID, &ur.MeterID, &ur.CustomerID); err != nil {
			slog.Error("scan unbilled reading", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to retrieve unbilled readings.")
			return
		}
		readings = append(readings, ur)
	}
	if readings == nil {
		readings = []models.UnbilledReading{}
	}
	writeJSON(w, http.StatusOK, readings)
}

// readingDetailQuery resolves the previous reading of the same meter by
// (reading_date, reading_id) order, defaulting to 0 for a meter's first
// reading, and picks the utility's lowest-min_units tariff rate.
const readingDetailQuery = `WITH reading_with_previous AS (
		SELECT
			r.reading_id,
			r.meter_id,
			r.reading_value AS current_reading_value,
			LAG(r.reading_value, 1, 0) OVER (PARTITION BY r.meter_id ORDER BY r.reading_date, r.reading_id) AS previous_reading_value
		FROM meter_readings r
	)
	SELECT
		rwp.meter_id,
		rwp.current_reading_value,
		rwp.previous_reading_value,
		m.customer_id,
		m.utility_id,
		COALESCE((SELECT t.rate FROM tariffs t WHERE t.utility_id = m.utility_id ORDER BY t.min_units LIMIT 1), 0)
	FROM reading_with_previous rwp
	JOIN meters m ON rwp.meter_id = m.meter_id
	WHERE rwp.reading_id = ?`

// GetReadingDetails retrieves a reading with its computed amount due
// @Summary      Get reading details
// @Description  Get a reading's previous value, consumption, and the amount due under the meter's utility pricing rule.
// @Tags         readings
// @Produce      json
// @Param        id   path      int  true  "Reading ID"
// @Success      200  {object}  Response{data=models.ReadingDetail}
// @Failure      404  {object}  Response{message=string}
// @Router       /api/reading-details/{id} [get]
// @Security     BasicAuth
func GetReadingDetails(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "reading id must be an integer")
		return
	}

	var d models.ReadingDetail
	var utilityID string
	var rate float64
	err = DB.QueryRow(readingDetailQuery, id).Scan(
		&d.MeterID, &d.CurrentReadingValue, &d.PreviousReadingValue,
		&d.CustomerID, &utilityID, &rate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "Reading details not found.")
		} else {
			slog.Error("get reading details", "error", err, "reading_id", id)
			writeError(w, http.StatusInternalServerError, "Server error fetching reading details.")
		}
		return
	}

	consumption := float64(d.CurrentReadingValue - d.PreviousReadingValue)
	d.Consumption = models.Decimal(consumption)
	if utilityID == models.ElectricityUtilityID {
		d.CalculatedAmountDue = models.Decimal(models.ElectricityAmount(consumption))
	} else {
		d.CalculatedAmountDue = models.Decimal(models.Round2(consumption * rate))
	}

	writeJSON(w, http.StatusOK, d)
}
