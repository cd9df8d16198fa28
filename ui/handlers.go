package ui

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"govalue/domain/compare"
	interrors "govalue/internal/errors"
)

// ProductDTO mirrors compare.ProductInput on the wire
type ProductDTO struct {
	Price        float64 `json:"price"`
	FiveStar     int     `json:"five_star"`
	FourStar     int     `json:"four_star"`
	TotalReviews int     `json:"total_reviews"`
}

// CompareRequest is the POST /api/v1/compare body
type CompareRequest struct {
	ProductA    ProductDTO `json:"product_a"`
	ProductB    ProductDTO `json:"product_b"`
	SampleCount int        `json:"sample_count,omitempty"`
	Seed        int64      `json:"seed,omitempty"`
}

// IntervalDTO is a [low, high] pair
type IntervalDTO struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// CompareResponse is the success body, matching the documented output
// shape: probabilities, per-product means, and 95% value intervals
type CompareResponse struct {
	ID           string         `json:"id"`
	ProbABetter  float64        `json:"prob_a_better"`
	ProbBBetter  float64        `json:"prob_b_better"`
	ProbTie      float64        `json:"prob_tie"`
	MeanQuality  [2]float64     `json:"mean_quality"`
	MeanValue    [2]float64     `json:"mean_value"`
	ValueCI95    [2]IntervalDTO `json:"value_ci95"`
	Successes    [2]int         `json:"successes"`
	Failures     [2]int         `json:"failures"`
	Verdict      string         `json:"verdict"`
	SampleCount  int            `json:"sample_count"`
	Seed         int64          `json:"seed,omitempty"`
	ComputedAtMS int64          `json:"computed_at_ms"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleCompare(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"code":    interrors.CodeInvalidInput,
				"message": "malformed request body: " + err.Error(),
			},
		})
		return
	}

	result, err := s.service.Compare(
		c.Request.Context(),
		productInput(req.ProductA),
		productInput(req.ProductB),
		compare.Options{SampleCount: req.SampleCount, Seed: req.Seed},
	)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toResponse(result))
}

// writeError maps validation failures to 400 with a structured code and
// field; everything else is a 500
func (s *Server) writeError(c *gin.Context, err error) {
	var verr *compare.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"code":    validationCode(verr.Kind),
				"field":   verr.Field,
				"message": verr.Message,
			},
		})
		return
	}

	s.logger.Error("comparison failed: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": gin.H{
			"code":    interrors.CodeInternalError,
			"message": "comparison failed",
		},
	})
}

func validationCode(kind compare.ValidationErrorKind) string {
	switch kind {
	case compare.InvalidPrice:
		return interrors.CodeInvalidPrice
	case compare.InvalidReviewCounts:
		return interrors.CodeInvalidReviewCounts
	case compare.InvalidSampleCount:
		return interrors.CodeInvalidSampleCount
	}
	return interrors.CodeInvalidInput
}

func productInput(dto ProductDTO) compare.ProductInput {
	return compare.ProductInput{
		Price:        dto.Price,
		FiveStar:     dto.FiveStar,
		FourStar:     dto.FourStar,
		TotalReviews: dto.TotalReviews,
	}
}

func toResponse(r *compare.ComparisonResult) CompareResponse {
	return CompareResponse{
		ID:          r.ID.String(),
		ProbABetter: r.ProbFirstBetter,
		ProbBBetter: r.ProbSecondBetter,
		ProbTie:     r.ProbTie,
		MeanQuality: r.MeanQuality,
		MeanValue:   r.MeanValue,
		ValueCI95: [2]IntervalDTO{
			{Low: r.ValueInterval95[0].Low, High: r.ValueInterval95[0].High},
			{Low: r.ValueInterval95[1].Low, High: r.ValueInterval95[1].High},
		},
		Successes:    r.Successes,
		Failures:     r.Failures,
		Verdict:      string(r.Verdict()),
		SampleCount:  r.SampleCount,
		Seed:         r.Seed,
		ComputedAtMS: r.ComputedAt.UnixMilli(),
	}
}
