package cvquality

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var personalChecks = []check[PersonalInfo]{
	award("full_name", 15,
		func(p PersonalInfo) bool { return charLen(p.FullName) >= 3 },
		"Nama lengkap sudah diisi",
		"Lengkapi nama lengkap Anda"),
	award("email", 15,
		func(p PersonalInfo) bool { return emailPattern.MatchString(p.Email) },
		"Alamat email valid",
		"Gunakan alamat email yang valid"),
	award("phone", 15,
		func(p PersonalInfo) bool { return utf8.RuneCountInString(p.Phone) >= 10 },
		"Nomor telepon lengkap",
		"Tambahkan nomor telepon yang dapat dihubungi"),
	award("address", 10,
		func(p PersonalInfo) bool { return notBlank(p.Address) },
		"Alamat sudah diisi",
		"Tambahkan alamat domisili Anda"),
	award("linkedin", 15,
		func(p PersonalInfo) bool { return notBlank(p.LinkedIn) },
		"Profil LinkedIn tercantum",
		"Tambahkan profil LinkedIn untuk meningkatkan kredibilitas"),
	award("portfolio", 15,
		func(p PersonalInfo) bool { return notBlank(p.Portfolio) },
		"Portofolio tercantum",
		"Tambahkan link portofolio untuk menunjukkan hasil karya Anda"),
	award("summary", 15,
		func(p PersonalInfo) bool { return charLen(p.Summary) > 50 },
		"Ringkasan profil informatif",
		"Tulis ringkasan profil yang lebih detail (minimal 50 karakter)"),
}

func analyzePersonal(p PersonalInfo) SectionFeedback {
	return runChecklist(SectionPersonal, p, personalChecks)
}

var educationChecks = []check[[]Education]{
	always[[]Education]("has_entries", 30, "Riwayat pendidikan tercantum"),
	award("degree", 30,
		func(es []Education) bool {
			return allOf(es, func(e Education) bool { return notBlank(e.Degree) })
		},
		"Jenjang pendidikan lengkap",
		"Lengkapi jenjang pendidikan pada setiap riwayat"),
	award("field", 20,
		func(es []Education) bool {
			return allOf(es, func(e Education) bool { return notBlank(e.Field) })
		},
		"Jurusan tercantum",
		"Tambahkan jurusan atau bidang studi"),
	award("years", 20,
		func(es []Education) bool {
			return allOf(es, func(e Education) bool { return notBlank(e.StartYear) && notBlank(e.EndYear) })
		},
		"Periode pendidikan lengkap",
		"Lengkapi tahun masuk dan tahun lulus"),
	award("description", 10,
		func(es []Education) bool {
			n := countOf(es, func(e Education) bool { return notBlank(e.Description) })
			return n*2 >= len(es)
		},
		"Deskripsi pendidikan informatif",
		"Tambahkan prestasi atau aktivitas selama pendidikan"),
}

func analyzeEducation(es []Education) SectionFeedback {
	if len(es) == 0 {
		return fixedSection(SectionEducation, 0,
			"Riwayat pendidikan belum diisi",
			"Tambahkan minimal satu riwayat pendidikan")
	}
	return runChecklist(SectionEducation, es, educationChecks)
}

var experienceChecks = []check[[]WorkExperience]{
	always[[]WorkExperience]("has_entries", 20, "Pengalaman kerja tercantum"),
	award("position", 15,
		func(ws []WorkExperience) bool {
			return allOf(ws, func(w WorkExperience) bool { return notBlank(w.Position) })
		},
		"Posisi pekerjaan jelas",
		"Lengkapi posisi pada setiap pengalaman kerja"),
	award("company", 15,
		func(ws []WorkExperience) bool {
			return allOf(ws, func(w WorkExperience) bool { return notBlank(w.Company) })
		},
		"Nama perusahaan tercantum",
		"Lengkapi nama perusahaan pada setiap pengalaman kerja"),
	award("dates", 15,
		func(ws []WorkExperience) bool {
			return allOf(ws, func(w WorkExperience) bool { return notBlank(w.StartDate) && notBlank(w.EndDate) })
		},
		"Periode kerja lengkap",
		"Lengkapi tanggal mulai dan selesai bekerja"),
	{name: "description", eval: experienceDescriptionTier},
	award("current_job", 5,
		func(ws []WorkExperience) bool {
			return countOf(ws, func(w WorkExperience) bool { return w.IsCurrentJob }) > 0
		},
		"Sedang aktif bekerja",
		""),
}

func experienceDescriptionTier(ws []WorkExperience) outcome {
	detailed := countOf(ws, func(w WorkExperience) bool { return charLen(w.Description) > 50 })
	ratio := float64(detailed) / float64(len(ws))
	switch {
	case ratio >= 0.7:
		return outcome{points: 20, feedback: "Deskripsi pekerjaan detail", positive: true}
	case ratio > 0:
		return outcome{points: 10, feedback: "Sebagian deskripsi pekerjaan sudah detail", positive: true}
	default:
		return outcome{suggestion: "Tambahkan deskripsi tanggung jawab dan pencapaian (minimal 50 karakter)"}
	}
}

func analyzeExperience(ws []WorkExperience) SectionFeedback {
	if len(ws) == 0 {
		// Fresh graduates have no work history; that is not a defect.
		return fixedSection(SectionExperience, 40,
			"Belum ada pengalaman kerja, tidak masalah untuk fresh graduate",
			"")
	}
	return runChecklist(SectionExperience, ws, experienceChecks)
}

var skillChecks = []check[[]string]{
	always[[]string]("has_entries", 30, "Keahlian tercantum"),
	{name: "count", eval: skillCountTier},
	{name: "balance", eval: skillBalanceTier},
	award("clarity", 15,
		func(ss []string) bool {
			return allOf(ss, func(s string) bool { return charLen(s) >= 3 })
		},
		"Nama keahlian jelas",
		"Gunakan nama keahlian yang lebih spesifik"),
}

func skillCountTier(ss []string) outcome {
	switch n := len(ss); {
	case n >= 5:
		return outcome{points: 20, feedback: "Jumlah keahlian memadai", positive: true}
	case n >= 3:
		return outcome{points: 10, feedback: "Jumlah keahlian cukup", positive: true}
	default:
		return outcome{suggestion: "Tambahkan minimal 3 sampai 5 keahlian yang relevan"}
	}
}

func skillBalanceTier(ss []string) outcome {
	found := ClassifySkills(ss)
	tech, soft := found[SkillTechnical], found[SkillSoft]
	switch {
	case tech && soft:
		return outcome{points: 25, feedback: "Kombinasi hard skill dan soft skill seimbang", positive: true}
	case tech:
		return outcome{points: 15, feedback: "Hard skill tercantum", positive: true,
			suggestion: "Tambahkan soft skill seperti leadership atau communication"}
	case soft:
		return outcome{points: 15, feedback: "Soft skill tercantum", positive: true,
			suggestion: "Tambahkan hard skill teknis yang relevan"}
	default:
		return outcome{points: 10,
			suggestion: "Sertakan kombinasi hard skill dan soft skill"}
	}
}

func analyzeSkills(ss []string) SectionFeedback {
	if len(ss) == 0 {
		return fixedSection(SectionSkills, 0,
			"Keahlian belum diisi",
			"Tambahkan keahlian yang Anda miliki")
	}
	return runChecklist(SectionSkills, ss, skillChecks)
}

var certificationChecks = []check[[]Certification]{
	always[[]Certification]("has_entries", 60, "Sertifikasi tercantum"),
	award("name", 15,
		func(cs []Certification) bool {
			return allOf(cs, func(c Certification) bool { return notBlank(c.Name) })
		},
		"Nama sertifikasi lengkap",
		"Lengkapi nama setiap sertifikasi"),
	award("issuer", 15,
		func(cs []Certification) bool {
			return allOf(cs, func(c Certification) bool { return notBlank(c.Issuer) })
		},
		"Penerbit sertifikasi tercantum",
		"Tambahkan lembaga penerbit sertifikasi"),
	award("year", 10,
		func(cs []Certification) bool {
			return allOf(cs, func(c Certification) bool { return notBlank(c.Year) })
		},
		"Tahun sertifikasi tercantum",
		"Tambahkan tahun perolehan sertifikasi"),
}

func analyzeCertifications(cs []Certification) SectionFeedback {
	if len(cs) == 0 {
		// Certifications are optional.
		return fixedSection(SectionCertifications, 50,
			"Belum ada sertifikasi, sertifikasi bersifat opsional",
			"")
	}
	return runChecklist(SectionCertifications, cs, certificationChecks)
}

func notBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

func charLen(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}

func allOf[T any](items []T, pred func(T) bool) bool {
	for _, it := range items {
		if !pred(it) {
			return false
		}
	}
	return true
}

func countOf[T any](items []T, pred func(T) bool) int {
	n := 0
	for _, it := range items {
		if pred(it) {
			n++
		}
	}
	return n
}
