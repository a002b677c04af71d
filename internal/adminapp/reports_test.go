package adminapp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dznutri/dznutri/internal/models"
	"github.com/dznutri/dznutri/internal/payload"
	"github.com/dznutri/dznutri/internal/services"
)

func TestListReports_RendersJoinedProducts(t *testing.T) {
	app, out := testApp()
	app.reports = &fakeReports{
		refreshFn: func(ctx context.Context) ([]services.ReportView, error) {
			return []services.ReportView{
				{Report: models.Report{ID: 1, Type: models.ReportUser, Barcode: "111"}, Product: &models.Product{ProductName: "Jus"}},
				{Report: models.Report{ID: 2, Type: models.ReportAuto, Barcode: "222"}},
			}, nil
		},
	}

	require.NoError(t, app.ListReports(context.Background()))
	require.Contains(t, out.String(), "Jus")
	require.Contains(t, out.String(), "(product unavailable)")
}

// Tab filtering must not trigger a refetch.
func TestFilterReports_NoRefetch(t *testing.T) {
	app, out := testApp()
	app.reports = &fakeReports{
		refreshFn: func(ctx context.Context) ([]services.ReportView, error) {
			t.Fatal("tab must not refetch")
			return nil, nil
		},
		tabFn: func(tp models.ReportType) []services.ReportView {
			require.Equal(t, models.ReportScoring, tp)
			return []services.ReportView{
				{Report: models.Report{ID: 3, Type: models.ReportScoring, Barcode: "333"}},
			}
		},
	}

	require.NoError(t, app.FilterReports([]string{"scoring"}))
	require.Contains(t, out.String(), "333")
}

func TestFilterReports_UnknownTab(t *testing.T) {
	app, _ := testApp()
	app.reports = &fakeReports{}

	require.Error(t, app.FilterReports([]string{"bogus"}))
}

func TestEditProduct_PrefilledAndSaved(t *testing.T) {
	// keep name, keep ingredients, new additives, then keep all 7 nutrients
	lines := []string{"", "", "E331, E500", "", "", "", "", "", "", ""}
	restore := swapInput(lines, "")
	defer restore()

	app, out := testApp()
	var (
		savedBarcode string
		savedEdit    *payload.ProductEdit
	)
	app.reports = &fakeReports{
		allFn: func() []services.ReportView {
			return []services.ReportView{{
				Report: models.Report{ID: 1, Barcode: "613"},
				Product: &models.Product{
					Barcode:     "613",
					ProductName: "Jus d'orange",
					Nutriments:  map[string]float64{"sugars_100g": 9.5},
				},
			}}
		},
		saveProductFn: func(ctx context.Context, barcode string, edit *payload.ProductEdit) error {
			savedBarcode = barcode
			savedEdit = edit
			return nil
		},
	}

	require.NoError(t, app.EditProduct(context.Background(), []string{"613"}))
	require.Equal(t, "613", savedBarcode)
	require.Equal(t, "Jus d'orange", savedEdit.ProductName)
	require.Equal(t, []string{"E331", "E500"}, savedEdit.AdditivesTags)
	require.Equal(t, 9.5, savedEdit.Nutriments["sugars_100g"])
	require.Contains(t, out.String(), "saved and rescored")
}
