package cvquality

type bracket struct {
	min     int
	grade   Grade
	label   string
	color   string
	message string
}

// brackets are ordered from the highest threshold down.
var brackets = []bracket{
	{min: 85, grade: GradeA, label: "Sangat Baik", color: "#10B981",
		message: "CV Anda sangat baik! Anda siap melamar ke posisi impian."},
	{min: 70, grade: GradeB, label: "Baik", color: "#3B82F6",
		message: "CV Anda sudah baik. Beberapa perbaikan kecil akan membuatnya lebih menonjol."},
	{min: 55, grade: GradeC, label: "Cukup", color: "#F59E0B",
		message: "CV Anda cukup baik, namun masih ada beberapa bagian yang perlu dilengkapi."},
	{min: 40, grade: GradeD, label: "Perlu Perbaikan", color: "#F97316",
		message: "CV Anda perlu perbaikan. Lengkapi bagian yang masih kosong untuk meningkatkan peluang."},
	{min: 0, grade: GradeF, label: "Kurang", color: "#EF4444",
		message: "CV Anda masih kurang lengkap. Ikuti saran di bawah untuk memperbaikinya."},
}

func bracketFor(score int) bracket {
	for _, b := range brackets {
		if score >= b.min {
			return b
		}
	}
	return brackets[len(brackets)-1]
}

func GradeFor(score int) Grade {
	return bracketFor(score).grade
}

// ScoreColor returns the hex color used to render score.
func ScoreColor(score int) string {
	return bracketFor(score).color
}

func ScoreLabel(score int) string {
	return bracketFor(score).label
}

func OverallMessage(score int) string {
	return bracketFor(score).message
}

func StatusFor(score int) Status {
	switch {
	case score >= 70:
		return StatusExcellent
	case score >= 50:
		return StatusGood
	case score >= 30:
		return StatusFair
	default:
		return StatusNeedsImprovement
	}
}
