package seeder

import (
	"context"
	"crypto/sha1"
	"strings"

	"karir-nusantara/internal/domain/recommendation"

	"github.com/google/uuid"
)

// seedNamespace keeps demo job ids stable across runs.
var seedNamespace = uuid.MustParse("6f1c2b1e-7a4d-4c55-9d1e-3b8f0a2c9e71")

type JobSeeder struct{}

func (JobSeeder) Name() string { return "jobs" }

func (JobSeeder) Run(ctx context.Context, jobs JobWriter) (int, error) {
	items := DemoJobs()
	for _, job := range items {
		if _, err := jobs.Upsert(ctx, job); err != nil {
			return 0, err
		}
	}
	return len(items), nil
}

// DemoJobs returns a small catalogue spread over categories and provinces.
func DemoJobs() []recommendation.Job {
	items := []recommendation.Job{
		{
			Title:        "Backend Engineer (Go)",
			Company:      "PT Nusantara Digital",
			Category:     "Teknologi",
			Province:     "DKI Jakarta",
			City:         "Jakarta Selatan",
			IsUrgent:     true,
			Requirements: []string{"Minimal 3 tahun pengalaman", "Golang", "PostgreSQL", "Redis"},
			SalaryMin:    money(15_000_000),
			SalaryMax:    money(25_000_000),
			Description:  "Membangun dan memelihara layanan REST berbasis Go.",
		},
		{
			Title:        "Frontend Developer",
			Company:      "PT Kreasi Nusantara",
			Category:     "Teknologi",
			Province:     "Jawa Barat",
			City:         "Bandung",
			IsRemote:     true,
			Requirements: []string{"2+ tahun", "React", "TypeScript", "CSS"},
			SalaryMin:    money(9_000_000),
			SalaryMax:    money(14_000_000),
			Description:  "Mengembangkan antarmuka web untuk produk e-commerce.",
		},
		{
			Title:        "Junior Data Analyst",
			Company:      "PT Data Cerdas Indonesia",
			Category:     "Teknologi",
			Province:     "Jawa Timur",
			City:         "Surabaya",
			Requirements: []string{"SQL", "Python", "Excel"},
			SalaryMin:    money(6_000_000),
			SalaryMax:    money(8_000_000),
			Description:  "Menyusun laporan dan dasbor untuk tim bisnis.",
		},
		{
			Title:        "Senior Accountant",
			Company:      "PT Sejahtera Finansial",
			Category:     "Keuangan",
			Province:     "DKI Jakarta",
			City:         "Jakarta Pusat",
			Requirements: []string{"Minimal 5 tahun pengalaman", "SAP", "PSAK"},
			SalaryMin:    money(18_000_000),
			SalaryMax:    money(24_000_000),
			Description:  "Mengelola pelaporan keuangan dan audit internal.",
		},
		{
			Title:        "Digital Marketing Specialist",
			Company:      "CV Pemasaran Kreatif",
			Category:     "Pemasaran",
			Province:     "Bali",
			City:         "Denpasar",
			IsRemote:     true,
			Requirements: []string{"SEO", "Google Ads", "Copywriting"},
			Description:  "Merencanakan kampanye digital untuk klien pariwisata.",
		},
		{
			Title:        "Perawat",
			Company:      "RS Sehat Sentosa",
			Category:     "Kesehatan",
			Province:     "Sumatera Utara",
			City:         "Medan",
			IsUrgent:     true,
			Requirements: []string{"STR aktif", "Entry level"},
			Description:  "Memberikan asuhan keperawatan di unit rawat inap.",
		},
	}
	for i := range items {
		items[i].ID = seedID(items[i]).String()
	}
	return items
}

func seedID(job recommendation.Job) uuid.UUID {
	key := strings.ToLower(job.Company + "|" + job.Title)
	return uuid.NewHash(sha1.New(), seedNamespace, []byte(key), 5)
}

func money(v int64) *int64 { return &v }
