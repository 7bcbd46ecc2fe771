package insights_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facturadom/factura-rd/internal/domain/entity"
	"github.com/facturadom/factura-rd/internal/domain/insights"
)

func TestBuildClientRadar_ClasificaPorDias(t *testing.T) {
	invoices := []entity.Invoice{
		factura("131245676", "Activo SRL", daysAgo(10), 1000),
		factura("00112345678", "En Riesgo SRL", daysAgo(45), 1000),
		factura("00187654321", "Perdido SRL", daysAgo(120), 1000),
	}
	agg := insights.Aggregate(invoices, refDate)

	radar := insights.BuildClientRadar(agg, insights.DefaultConfig())

	require.Len(t, radar, 3)
	statuses := make(map[string]insights.ClientStatus)
	for _, e := range radar {
		statuses[e.Name] = e.Status
	}
	assert.Equal(t, insights.StatusActive, statuses["Activo SRL"])
	assert.Equal(t, insights.StatusAtRisk, statuses["En Riesgo SRL"])
	assert.Equal(t, insights.StatusLost, statuses["Perdido SRL"])
}

func TestBuildClientRadar_BordesDeVentana(t *testing.T) {
	invoices := []entity.Invoice{
		factura("131245676", "Borde30", daysAgo(30), 100),
		factura("00112345678", "Borde31", daysAgo(31), 100),
		factura("00187654321", "Borde90", daysAgo(90), 100),
		factura("00100000009", "Borde91", daysAgo(91), 100),
	}
	agg := insights.Aggregate(invoices, refDate)
	radar := insights.BuildClientRadar(agg, insights.DefaultConfig())

	byName := make(map[string]insights.ClientStatus)
	for _, e := range radar {
		byName[e.Name] = e.Status
	}
	assert.Equal(t, insights.StatusActive, byName["Borde30"], "30 días aún es activo")
	assert.Equal(t, insights.StatusAtRisk, byName["Borde31"], "31 días entra en riesgo")
	assert.Equal(t, insights.StatusAtRisk, byName["Borde90"], "90 días sigue en riesgo")
	assert.Equal(t, insights.StatusLost, byName["Borde91"], "91 días es perdido")
}

func TestBuildClientRadar_ParticipacionSuma100(t *testing.T) {
	invoices := []entity.Invoice{
		factura("131245676", "A", daysAgo(1), 3333),
		factura("00112345678", "B", daysAgo(2), 3333),
		factura("00187654321", "C", daysAgo(3), 3334),
	}
	agg := insights.Aggregate(invoices, refDate)
	radar := insights.BuildClientRadar(agg, insights.DefaultConfig())

	sum := 0
	for _, e := range radar {
		sum += e.RevenueSharePct
	}
	assert.InDelta(t, 100, sum, 1, "las participaciones redondeadas suman 100 ±1")
}

func TestBuildClientRadar_OrdenPorIngresos(t *testing.T) {
	invoices := []entity.Invoice{
		factura("131245676", "Chico", daysAgo(1), 100),
		factura("00112345678", "Grande", daysAgo(2), 9000),
		factura("00187654321", "Mediano", daysAgo(3), 500),
	}
	agg := insights.Aggregate(invoices, refDate)
	radar := insights.BuildClientRadar(agg, insights.DefaultConfig())

	require.Len(t, radar, 3)
	assert.Equal(t, "Grande", radar[0].Name)
	assert.Equal(t, "Mediano", radar[1].Name)
	assert.Equal(t, "Chico", radar[2].Name)
}

func TestBuildClientRadar_ClienteUnicoNoSeDegrada(t *testing.T) {
	// Un solo cliente con el 100% de participación no debe romper el cálculo
	// ni marcarse en riesgo solo por ser el único.
	invoices := []entity.Invoice{factura("131245676", "Único SRL", daysAgo(5), 15000)}
	agg := insights.Aggregate(invoices, refDate)

	radar := insights.BuildClientRadar(agg, insights.DefaultConfig())

	require.Len(t, radar, 1)
	assert.Equal(t, 100, radar[0].RevenueSharePct)
	assert.Equal(t, insights.StatusActive, radar[0].Status)
	assert.Empty(t, radar[0].Recommendation, "activo no requiere recomendación")
}

func TestBuildClientRadar_RecomendacionSoloClientesMateriales(t *testing.T) {
	invoices := []entity.Invoice{
		factura("131245676", "Grande Dormido", daysAgo(60), 50000), // cuartil superior, en riesgo
		factura("00112345678", "A", daysAgo(1), 100),
		factura("00187654321", "B", daysAgo(1), 100),
		factura("00100000009", "Chico Dormido", daysAgo(60), 50), // en riesgo pero inmaterial
	}
	agg := insights.Aggregate(invoices, refDate)
	radar := insights.BuildClientRadar(agg, insights.DefaultConfig())

	byName := make(map[string]insights.RadarEntry)
	for _, e := range radar {
		byName[e.Name] = e
	}
	assert.NotEmpty(t, byName["Grande Dormido"].Recommendation, "cliente material en riesgo lleva recomendación")
	assert.Empty(t, byName["Chico Dormido"].Recommendation, "no todos los clientes necesitan recomendación")
}

func TestBuildClientRadar_SinClientes(t *testing.T) {
	agg := insights.Aggregate(nil, refDate)
	radar := insights.BuildClientRadar(agg, insights.DefaultConfig())
	assert.NotNil(t, radar)
	assert.Empty(t, radar)
}
