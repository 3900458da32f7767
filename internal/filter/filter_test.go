package filter

import (
	"testing"

	"github.com/mavrin/citizen-report-portal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var crimes = []models.CrimeReport{
	{ID: "R1", Title: "Bicycle THEFT", Description: "Taken from the rack", Location: "Station", Category: models.CategoryTheft, Status: models.StatusReported, ReportedBy: "citizen-1"},
	{ID: "R2", Title: "Broken window", Description: "Attempted theft through the back door", Category: models.CategoryBurglary, Status: models.StatusInvestigating, ReportedBy: "citizen-2"},
	{ID: "R3", Title: "Graffiti", Description: "Wall sprayed overnight", Location: "Theftonia Street", Category: models.CategoryVandalism, Status: models.StatusClosed, ReportedBy: "citizen-1"},
	{ID: "R4", Title: "Scam call", Description: "Caller asked for bank codes", Category: models.CategoryFraud, Status: models.StatusReported, ReportedBy: "citizen-3"},
}

func ids(reports []models.CrimeReport) []string {
	out := make([]string, len(reports))
	for i, r := range reports {
		out[i] = r.ID
	}
	return out
}

func TestCrimes_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	got := Crimes(crimes, CrimeQuery{Search: "theft", Status: All})

	// R1 via title, R2 via description, R3 via location. R4 matches nowhere.
	assert.Equal(t, []string{"R1", "R2", "R3"}, ids(got))
}

func TestCrimes_AllSentinelMeansNoConstraint(t *testing.T) {
	got := Crimes(crimes, CrimeQuery{Status: All, Category: All})

	assert.Len(t, got, len(crimes))
}

func TestCrimes_FiltersAreANDed(t *testing.T) {
	got := Crimes(crimes, CrimeQuery{Search: "theft", Status: "reported", Category: "theft"})

	require.Len(t, got, 1)
	assert.Equal(t, "R1", got[0].ID)
}

func TestCrimes_OwnershipConstraint(t *testing.T) {
	got := Crimes(crimes, CrimeQuery{OwnerID: "citizen-1"})

	assert.Equal(t, []string{"R1", "R3"}, ids(got))
}

func TestCrimes_NoMatches(t *testing.T) {
	got := Crimes(crimes, CrimeQuery{Search: "arson"})

	assert.Empty(t, got)
}

func TestIncidents_TypeAndStatus(t *testing.T) {
	incidents := []models.IncidentReport{
		{ID: "I1", Title: "Fallen tree", IncidentType: models.IncidentHazard, Status: models.StatusReported},
		{ID: "I2", Title: "Street party noise", IncidentType: models.IncidentDisturbance, Status: models.StatusReported},
		{ID: "I3", Title: "Pothole", IncidentType: models.IncidentHazard, Status: models.StatusResolved},
	}

	got := Incidents(incidents, IncidentQuery{Type: "hazard", Status: "reported"})

	require.Len(t, got, 1)
	assert.Equal(t, "I1", got[0].ID)
}
