package render

// PointsPerCentimeter is the number of PDF points in one centimeter.
// 1 inch = 72 points = 2.54 cm, rounded the way the layout constants use it.
const PointsPerCentimeter = 28.35

// CentimetersToPoints converts centimeters to PDF points.
func CentimetersToPoints(cm float64) float64 {
	return cm * PointsPerCentimeter
}

// A4 page dimensions in points, portrait.
const (
	A4Width  = 595.28
	A4Height = 841.89
)
