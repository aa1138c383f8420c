package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/pipewatch/pipewatch/pkg/domain/model"
)

func TestPredictionMismatch(t *testing.T) {
	yes := true
	no := false

	cases := []struct {
		name string
		pred model.Prediction
		want bool
	}{
		{"predicted pass, actually failed", model.Prediction{Predicted: &yes, Actual: &no}, true},
		{"predicted fail, actually passed", model.Prediction{Predicted: &no, Actual: &yes}, true},
		{"prediction confirmed", model.Prediction{Predicted: &yes, Actual: &yes}, false},
		{"no prediction yet", model.Prediction{Actual: &no}, false},
		{"no outcome yet", model.Prediction{Predicted: &yes}, false},
		{"neither recorded", model.Prediction{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gt.V(t, tc.pred.Mismatch()).Equal(tc.want)
		})
	}
}
