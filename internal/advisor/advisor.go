// Package advisor recommends which compressed representation to build for
// a given hypergraph shape, without requiring the caller to build all four
// and compare.
package advisor

import (
	"sort"

	"github.com/kgcore/kgcore/pkg/model"
)

// Advisor generates representation recommendations from a set of rules.
type Advisor struct {
	rules []Rule
}

// Rule represents a single recommendation heuristic.
type Rule struct {
	Name        string
	Description string
	Check       RuleCheckFunc
}

// RuleCheckFunc inspects ctx and optionally returns a recommendation; nil
// means the rule does not apply.
type RuleCheckFunc func(ctx *RuleContext) *model.Recommendation

// RuleContext carries the shape summary every rule reasons over.
type RuleContext struct {
	VertexCount  int
	EdgeCount    int
	MeanEdgeSize float64
	GMax         int
	MeanKMax     float64
}

// NewAdvisor creates an Advisor with the default rule set.
func NewAdvisor() *Advisor {
	return &Advisor{rules: defaultRules()}
}

// NewAdvisorWithRules creates an Advisor with a custom rule set.
func NewAdvisorWithRules(rules []Rule) *Advisor {
	return &Advisor{rules: rules}
}

// Advise runs every rule against ctx and returns the matching
// recommendations sorted by descending score.
func (a *Advisor) Advise(ctx *RuleContext) []model.Recommendation {
	recs := make([]model.Recommendation, 0, len(a.rules))
	for _, rule := range a.rules {
		if rule.Check == nil {
			continue
		}
		if rec := rule.Check(ctx); rec != nil {
			recs = append(recs, *rec)
		}
	}
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Score > recs[j].Score })
	return recs
}

func defaultRules() []Rule {
	return []Rule{
		{
			Name:        "small_grid_favors_naive",
			Description: "small (g,k) grids don't benefit from compression overhead",
			Check:       checkSmallGrid,
		},
		{
			Name:        "deep_k_chain_favors_one_level",
			Description: "long, slowly-shrinking chains compress well horizontally",
			Check:       checkDeepKChain,
		},
		{
			Name:        "many_g_rows_favor_jump",
			Description: "many g rows with similar k depths benefit from vertical residuals",
			Check:       checkManyGRows,
		},
		{
			Name:        "dense_grid_favors_diagonal",
			Description: "large, dense grids benefit most from diagonal compression's deeper reuse",
			Check:       checkDenseGrid,
		},
	}
}

func checkSmallGrid(ctx *RuleContext) *model.Recommendation {
	if ctx.VertexCount < 200 && ctx.GMax < 5 {
		return &model.Recommendation{
			Representation: "naive",
			Reason:         "grid small enough that full materialization costs little and avoids traversal overhead",
			Score:          0.6,
		}
	}
	return nil
}

func checkDeepKChain(ctx *RuleContext) *model.Recommendation {
	if ctx.MeanKMax > 20 {
		return &model.Recommendation{
			Representation: "one_level",
			Reason:         "deep k chains benefit from storing only horizontal residuals",
			Score:          0.7,
		}
	}
	return nil
}

func checkManyGRows(ctx *RuleContext) *model.Recommendation {
	if ctx.GMax > 10 && ctx.MeanKMax <= 20 {
		return &model.Recommendation{
			Representation: "jump",
			Reason:         "many g rows with comparable k depth reuse well vertically",
			Score:          0.75,
		}
	}
	return nil
}

func checkDenseGrid(ctx *RuleContext) *model.Recommendation {
	if ctx.GMax > 10 && ctx.MeanKMax > 20 && ctx.VertexCount > 1000 {
		return &model.Recommendation{
			Representation: "diagonal",
			Reason:         "large, deep grids amortize diagonal compression's extra bookkeeping",
			Score:          0.9,
		}
	}
	return nil
}
