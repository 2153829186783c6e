package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Proged2021/SkillMiner/internal/types"
)

// fakeClient implements llm.Client for fault injection.
type fakeClient struct {
	response   string
	err        error
	calls      int
	lastSystem string
	lastUser   string
}

func (f *fakeClient) GenerateJSON(_ context.Context, system, user string) (string, error) {
	f.calls++
	f.lastSystem = system
	f.lastUser = user
	return f.response, f.err
}

func (f *fakeClient) Close() error { return nil }

func testAttrs() types.UserAttributes {
	return types.UserAttributes{
		Skills:     []string{"プログラミング", "データ分析"},
		Hobbies:    []string{"読書", "写真"},
		Occupation: "エンジニア",
	}
}

func validReportJSON(t *testing.T) string {
	t.Helper()
	report := FallbackReport(testAttrs())
	b, err := json.Marshal(report)
	require.NoError(t, err)
	return string(b)
}

// assertValidShape asserts the shape invariants every returned report must
// satisfy regardless of how it was produced.
func assertValidShape(t *testing.T, report *types.Report) {
	t.Helper()
	require.NotNil(t, report)

	assert.GreaterOrEqual(t, len(report.HiddenSkills), 3)
	assert.LessOrEqual(t, len(report.HiddenSkills), 6)
	for _, skill := range report.HiddenSkills {
		assert.GreaterOrEqual(t, skill.Confidence, 0.0)
		assert.LessOrEqual(t, skill.Confidence, 1.0)
	}

	assert.GreaterOrEqual(t, len(report.MatchedJobs), 4)
	assert.LessOrEqual(t, len(report.MatchedJobs), 12)
	for _, job := range report.MatchedJobs {
		assert.GreaterOrEqual(t, job.MatchRate, 0)
		assert.LessOrEqual(t, job.MatchRate, 100)
	}

	require.Len(t, report.Roadmap, 8)
	for i, step := range report.Roadmap {
		assert.Equal(t, i+1, step.Week)
	}
}

func quietGenerator(client *fakeClient) *Generator {
	var g *Generator
	if client == nil {
		g = NewGenerator(nil, DefaultPolicy())
	} else {
		g = NewGenerator(client, DefaultPolicy())
	}
	g.SetLogger(log.New(io.Discard, "", 0))
	return g
}

func TestGenerate_NoCredential(t *testing.T) {
	g := quietGenerator(nil)

	report, outcome := g.Generate(context.Background(), testAttrs(), nil)

	assert.Equal(t, OutcomeSkipped, outcome)
	assertValidShape(t, report)
}

func TestGenerate_NoCredentialIsDeterministic(t *testing.T) {
	g := quietGenerator(nil)

	first, _ := g.Generate(context.Background(), testAttrs(), nil)
	second, _ := g.Generate(context.Background(), testAttrs(), nil)

	assert.Equal(t, first, second)
}

func TestGenerate_Delegated(t *testing.T) {
	client := &fakeClient{response: validReportJSON(t)}
	g := quietGenerator(client)

	report, outcome := g.Generate(context.Background(), testAttrs(), nil)

	assert.Equal(t, OutcomeDelegated, outcome)
	assert.Equal(t, 1, client.calls)
	assertValidShape(t, report)
	assert.Equal(t, "テクニカルライティング", report.HiddenSkills[0].Name)
}

func TestGenerate_TransportFaultFallsBack(t *testing.T) {
	client := &fakeClient{err: errors.New("connection refused")}
	g := quietGenerator(client)

	report, outcome := g.Generate(context.Background(), testAttrs(), nil)

	assert.Equal(t, OutcomeFallback, outcome)
	assertValidShape(t, report)
}

func TestGenerate_MalformedJSONFallsBack(t *testing.T) {
	client := &fakeClient{response: "this is not json"}
	g := quietGenerator(client)

	report, outcome := g.Generate(context.Background(), testAttrs(), nil)

	assert.Equal(t, OutcomeFallback, outcome)
	assertValidShape(t, report)
}

func TestGenerate_SchemaFaultFallsBack(t *testing.T) {
	// Parses as JSON but violates the report shape.
	client := &fakeClient{response: `{"hiddenSkills":[],"matchedJobs":[],"roadmap":[]}`}
	g := quietGenerator(client)

	report, outcome := g.Generate(context.Background(), testAttrs(), nil)

	assert.Equal(t, OutcomeFallback, outcome)
	assertValidShape(t, report)
}

func TestGenerate_CodeFencedResponseAccepted(t *testing.T) {
	client := &fakeClient{response: "```json\n" + validReportJSON(t) + "\n```"}
	g := quietGenerator(client)

	_, outcome := g.Generate(context.Background(), testAttrs(), nil)

	assert.Equal(t, OutcomeDelegated, outcome)
}

func TestGenerate_PromptContents(t *testing.T) {
	client := &fakeClient{response: validReportJSON(t)}
	g := quietGenerator(client)

	profiles := []types.SNSProfile{{Platform: "twitter", Username: "alice"}}
	g.Generate(context.Background(), testAttrs(), profiles)

	assert.Contains(t, client.lastSystem, "4〜6個")
	assert.Contains(t, client.lastSystem, "8〜12個")
	assert.Contains(t, client.lastSystem, "クラウドワークス")
	assert.Contains(t, client.lastSystem, "日本語")
	assert.Contains(t, client.lastUser, "エンジニア")
	assert.Contains(t, client.lastUser, "プログラミング, データ分析")
	assert.Contains(t, client.lastUser, "SNSデータ")
	assert.Contains(t, client.lastUser, "alice")
}

func TestGenerate_NoProfilesOmitsSNSData(t *testing.T) {
	client := &fakeClient{response: validReportJSON(t)}
	g := quietGenerator(client)

	g.Generate(context.Background(), testAttrs(), nil)

	assert.NotContains(t, client.lastUser, "SNSデータ")
}

func TestGenerate_JapaneseScenario(t *testing.T) {
	g := quietGenerator(nil)

	attrs := types.UserAttributes{
		Skills:     []string{"プログラミング"},
		Hobbies:    []string{"読書"},
		Occupation: "エンジニア",
	}
	report, outcome := g.Generate(context.Background(), attrs, nil)

	assert.Equal(t, OutcomeSkipped, outcome)
	require.Len(t, report.Roadmap, 8)
	assert.NotEmpty(t, report.Roadmap[0].Milestone)
	weeks := make([]int, 0, len(report.Roadmap))
	for _, step := range report.Roadmap {
		weeks = append(weeks, step.Week)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, weeks)
}
