// Package hyperparams provides schedules for hyperparameters that change over the course of
// training, such as the learning rate (see nn.TrainArgs.LearningRateSchedule).
package hyperparams

type constant float64

// Constant returns a Schedule that always gives the same value.
func Constant(value float64) *constant {
	c := constant(value)
	return &c
}

func (c *constant) TypeString() string {
	return "constant"
}

func (c *constant) Value(epoch int) float64 {
	return float64(*c)
}
