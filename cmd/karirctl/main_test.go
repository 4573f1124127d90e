package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"karir-nusantara/internal/domain/cvquality"
	"karir-nusantara/internal/domain/recommendation"
	"karir-nusantara/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestAnalyzeCV_YAMLFile(t *testing.T) {
	path := writeFile(t, "cv.yaml", "personalInfo:\n  fullName: \"\"\nskills: []\n")

	out, err := run(t, "", "analyze-cv", "--file", path)
	require.NoError(t, err)

	var fb cvquality.Feedback
	require.NoError(t, json.Unmarshal([]byte(out), &fb))
	assert.Equal(t, 18, fb.Score)
	assert.Equal(t, cvquality.GradeF, fb.Grade)
	assert.Len(t, fb.Sections, 5)
}

func TestAnalyzeCV_StdinSummary(t *testing.T) {
	out, err := run(t, `{"personalInfo":{"fullName":"Budi Santoso"}}`, "analyze-cv", "--file", "-", "--summary")
	require.NoError(t, err)
	assert.Contains(t, out, "Skor:")
	assert.Contains(t, out, "personal")
}

func TestAnalyzeCV_RequiresFile(t *testing.T) {
	_, err := run(t, "", "analyze-cv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file")
}

func TestRecommend(t *testing.T) {
	profile := writeFile(t, "profile.yaml", "category: Teknologi\nlocation: Bali\nexperience: 3\nskills: [Go]\n")
	jobs := writeFile(t, "jobs.json", `[
		{"id": "a", "title": "Backend", "category": "Teknologi", "province": "Bali", "requirements": ["Go"]},
		{"id": "b", "title": "Akuntan", "category": "Keuangan", "province": "Aceh", "requirements": ["SAP"]}
	]`)

	out, err := run(t, "", "recommend", "--profile", profile, "--jobs", jobs)
	require.NoError(t, err)

	var got []recommendation.Score
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Job.ID)
	assert.Equal(t, 100, got[0].Score)
}

func TestRecommend_Validation(t *testing.T) {
	jobs := writeFile(t, "jobs.json", `[]`)

	_, err := run(t, "", "recommend", "--jobs", jobs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--profile")

	profile := writeFile(t, "profile.json", `{"category": "Teknologi"}`)
	_, err = run(t, "", "recommend", "--profile", profile, "--jobs", jobs, "--limit", "-1")
	require.Error(t, err)
}

func TestToken(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "test-secret")
	id := uuid.New()

	out, err := run(t, "", "token", "--user", id.String(), "--email", "ani@example.id")
	require.NoError(t, err)

	claims, err := jwt.NewHMACService("test-secret", 0).ValidateToken(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "ani@example.id", claims.Email)
}

func TestToken_InvalidUser(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "test-secret")
	_, err := run(t, "", "token", "--user", "nope")
	require.Error(t, err)
}

func TestDecodeDocument(t *testing.T) {
	var m map[string]any
	assert.Error(t, decodeDocument([]byte("  \n"), &m))
	assert.Error(t, decodeDocument([]byte("{not: [valid"), &m))

	require.NoError(t, decodeDocument([]byte(`{"skills": ["Go", "SQL"]}`), &m))
	assert.Equal(t, []any{"Go", "SQL"}, m["skills"])

	var cv cvquality.CV
	require.NoError(t, decodeDocument([]byte("personalInfo:\n  fullName: Ani\nskills:\n  - Go\n"), &cv))
	assert.Equal(t, "Ani", cv.PersonalInfo.FullName)
	assert.Equal(t, []string{"Go"}, cv.Skills)
}
