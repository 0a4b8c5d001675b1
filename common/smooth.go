package common

import "math"

const minSmoothTime = 0.0001

// SmoothDamp moves current toward target like a critically damped spring.
// velocity carries state between calls and must be owned by the caller.
// The result never overshoots target.
func SmoothDamp(current, target float64, velocity *float64, smoothTime, dt float64) float64 {
	if dt <= 0 {
		return current
	}
	smoothTime = math.Max(minSmoothTime, smoothTime)
	omega := 2 / smoothTime

	x := omega * dt
	exp := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)
	change := current - target
	wantTarget := target
	target = current - change

	temp := (*velocity + omega*change) * dt
	*velocity = (*velocity - omega*temp) * exp
	output := target + (change+temp)*exp

	if (wantTarget-current > 0) == (output > wantTarget) {
		output = wantTarget
		*velocity = (output - wantTarget) / dt
	}
	return output
}

// SmoothDampAngle is SmoothDamp for degrees, taking the shortest arc to target.
func SmoothDampAngle(current, target float64, velocity *float64, smoothTime, dt float64) float64 {
	target = current + DeltaAngle(current, target)
	return SmoothDamp(current, target, velocity, smoothTime, dt)
}

// SmoothRotation smooths an angle toward a moving target.
type SmoothRotation struct {
	current  float64
	velocity float64
}

func NewSmoothRotation(start float64) SmoothRotation {
	return SmoothRotation{current: start}
}

func (s *SmoothRotation) Update(target, smoothTime, dt float64) float64 {
	s.current = SmoothDampAngle(s.current, target, &s.velocity, smoothTime, dt)
	return s.current
}

func (s *SmoothRotation) Current() float64 { return s.current }

func (s *SmoothRotation) SetCurrent(v float64) { s.current = v }

// SmoothVelocity smooths a scalar speed toward a moving target.
type SmoothVelocity struct {
	current  float64
	velocity float64
}

func (s *SmoothVelocity) Update(target, smoothTime, dt float64) float64 {
	s.current = SmoothDamp(s.current, target, &s.velocity, smoothTime, dt)
	return s.current
}

func (s *SmoothVelocity) Current() float64 { return s.current }

func (s *SmoothVelocity) SetCurrent(v float64) { s.current = v }

// Reset stops the smoother dead, dropping any carried velocity.
func (s *SmoothVelocity) Reset() {
	s.current = 0
	s.velocity = 0
}
