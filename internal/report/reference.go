package report

// Fixed reference content. These tables appear in every edition regardless
// of what the feeds return; only the flash-flood row of the rivers table is
// live.

// riverRows lists the Arecibo-area river gauges and the USGS live-flow
// station: name, gauge code, standing instruction, where to check.
var riverRows = [][4]string{
	{"Rio Arecibo", "AREP4", "Verificar AHPS", "water.weather.gov"},
	{"Rio Grande de Arecibo", "GRAP4", "Verificar AHPS", "water.weather.gov"},
	{"Rio Camuy", "CMAP4", "Verificar AHPS", "water.weather.gov"},
	{"Rio Manati", "MNTP4", "Verificar AHPS", "water.weather.gov"},
	{"USGS Flujo Real", "50029000", "Verificar en vivo", "waterdata.usgs.gov"},
}

// marineRows is the standing north-coast advisory: parameter, condition,
// level. The whole level column renders in the danger color.
var marineRows = [][3]string{
	{"Oleaje Costa Norte", "9-10 pies", "PELIGROSO"},
	{"Vientos Alisios", "E 10-20 kt, rafagas hasta 30 kt", "AVISO VIGENTE"},
	{"Periodo del oleaje", "8-10 segundos", "MODERADO-ALTO"},
	{"Corrientes marinas", "Peligrosas (rip currents)", "PELIGROSO"},
	{"Natacion en playas", "NO RECOMENDADO", "PELIGROSO"},
	{"Embarcaciones pequenas", "Small Craft Advisory vigente", "RESTRINGIDA"},
}

// contactRows lists emergency resources for the Arecibo area.
var contactRows = [][2]string{
	{"Emergencias Puerto Rico", "9-1-1"},
	{"NWS San Juan", "(787) 253-4586  |  weather.gov/sju"},
	{"SCEM Puerto Rico", "(787) 724-0124  |  spcpr.pr.gov"},
	{"DTOP - Carreteras", "(787) 723-3600  |  dtop.pr.gov"},
	{"Cruz Roja PR", "(787) 759-7979"},
	{"Rio Arecibo AREP4 en vivo", "water.weather.gov/ahps2/hydrograph.php?gage=AREP4"},
	{"USGS Rios Puerto Rico", "waterdata.usgs.gov/pr/nwis/rt"},
	{"NHC - Ciclones Tropicales", "nhc.noaa.gov"},
	{"Radar NWS TJUA", "radar.weather.gov/station/TJUA/standard"},
}

const disclaimer = "Reporte generado automaticamente por GitHub Actions a las 6:00 AM AST. " +
	"Siempre consulte weather.gov/sju para decisiones criticas de seguridad. " +
	"Este reporte no reemplaza las alertas oficiales del Servicio Nacional de Meteorologia."
