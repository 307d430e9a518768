package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

type normalizationRunJson struct {
	RunID       string `json:"runId"`
	CommonStart string `json:"commonStart"`
	EndDate     string `json:"endDate"`
	Policy      string `json:"policy"`
	CreatedAt   string `json:"createdAt"`
}

func (m ApiHandler) runs(c *gin.Context) {
	if m.RunRepository == nil {
		returnErrorJson(fmt.Errorf("no run store configured"), c)
		return
	}

	runs, err := m.RunRepository.List()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []normalizationRunJson{}
	for _, r := range runs {
		out = append(out, normalizationRunJson{
			RunID:       r.RunID.String(),
			CommonStart: r.CommonStart.Format(time.DateOnly),
			EndDate:     r.EndDate.Format(time.DateOnly),
			Policy:      r.Policy,
			CreatedAt:   r.CreatedAt.Format(time.RFC3339),
		})
	}

	c.JSON(200, gin.H{"runs": out})
}
