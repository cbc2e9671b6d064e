package sdf

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestLightDefaults(t *testing.T) {
	l := NewLight()
	test.That(t, l.Type(), test.ShouldEqual, LightTypePoint)
	test.That(t, l.CastShadows(), test.ShouldBeFalse)
	test.That(t, l.AttenuationRange(), test.ShouldEqual, 10)
	test.That(t, l.LinearAttenuationFactor(), test.ShouldEqual, 1)
	test.That(t, l.ConstantAttenuationFactor(), test.ShouldEqual, 1)
	test.That(t, l.QuadraticAttenuationFactor(), test.ShouldEqual, 0)
	test.That(t, l.Direction().Z, test.ShouldEqual, -1)
}

func TestLightLoadPoint(t *testing.T) {
	doc := `
<light name="lamp">
  <pose>0 0 2 0 0 0</pose>
  <cast_shadows>true</cast_shadows>
</light>`
	l := NewLight()
	errs := l.Load(mustParse(t, doc))
	test.That(t, errs, test.ShouldBeEmpty)
	test.That(t, l.Name(), test.ShouldEqual, "lamp")
	test.That(t, l.Type(), test.ShouldEqual, LightTypePoint)
	test.That(t, l.Pose().Position.Z, test.ShouldEqual, 2)
	test.That(t, l.CastShadows(), test.ShouldBeTrue)
	test.That(t, l.Element(), test.ShouldNotBeNil)
}

func TestLightLoadSpot(t *testing.T) {
	doc := `
<light name="headlamp" type="spot">
  <direction>0 0 -1</direction>
  <attenuation>
    <range>20</range>
    <linear>0.5</linear>
    <constant>0.8</constant>
    <quadratic>0.01</quadratic>
  </attenuation>
  <spot>
    <inner_angle>0.3</inner_angle>
    <outer_angle>0.6</outer_angle>
    <falloff>1.2</falloff>
  </spot>
</light>`
	l := NewLight()
	errs := l.Load(mustParse(t, doc))
	test.That(t, errs, test.ShouldBeEmpty)
	test.That(t, l.Type(), test.ShouldEqual, LightTypeSpot)
	test.That(t, l.AttenuationRange(), test.ShouldEqual, 20)
	test.That(t, l.LinearAttenuationFactor(), test.ShouldEqual, 0.5)
	test.That(t, l.ConstantAttenuationFactor(), test.ShouldEqual, 0.8)
	test.That(t, l.QuadraticAttenuationFactor(), test.ShouldEqual, 0.01)
	test.That(t, l.SpotInnerAngle(), test.ShouldEqual, 0.3)
	test.That(t, l.SpotOuterAngle(), test.ShouldEqual, 0.6)
	test.That(t, l.SpotFalloff(), test.ShouldEqual, 1.2)
}

func TestLightLoadWrongTag(t *testing.T) {
	l := NewLight()
	errs := l.Load(mustParse(t, `<joint name="j"/>`))
	test.That(t, errs, test.ShouldHaveLength, 1)
	test.That(t, errs[0].Code, test.ShouldEqual, ErrorElementIncorrectType)
}

func TestLightLoadInvalidType(t *testing.T) {
	l := NewLight()
	errs := l.Load(mustParse(t, `<light name="l" type="laser"/>`))
	test.That(t, errs, test.ShouldHaveLength, 1)
	test.That(t, errs[0].Code, test.ShouldEqual, ErrorAttributeInvalid)
	test.That(t, errs[0].Message, test.ShouldContainSubstring, "laser")
	test.That(t, l.Type(), test.ShouldEqual, LightTypeInvalid)
}

func TestLightLoadMissingName(t *testing.T) {
	l := NewLight()
	errs := l.Load(mustParse(t, `<light/>`))
	test.That(t, errs, test.ShouldHaveLength, 1)
	test.That(t, errs[0].Code, test.ShouldEqual, ErrorAttributeMissing)
}

func TestLightLoadReservedName(t *testing.T) {
	l := NewLight()
	errs := l.Load(mustParse(t, `<light name="__default__"/>`))
	test.That(t, errs, test.ShouldHaveLength, 1)
	test.That(t, errs[0].Code, test.ShouldEqual, ErrorReservedName)
}

func TestLightLoadSpotNeedsDirection(t *testing.T) {
	l := NewLight()
	errs := l.Load(mustParse(t, `<light name="l" type="directional"/>`))
	test.That(t, errs, test.ShouldHaveLength, 1)
	test.That(t, errs[0].Code, test.ShouldEqual, ErrorElementMissing)
	test.That(t, errs[0].Message, test.ShouldContainSubstring, "direction")
}

func TestLightLoadAttenuationNeedsRange(t *testing.T) {
	doc := `<light name="l"><attenuation><linear>0.5</linear></attenuation></light>`
	l := NewLight()
	errs := l.Load(mustParse(t, doc))
	test.That(t, errs, test.ShouldHaveLength, 1)
	test.That(t, errs[0].Code, test.ShouldEqual, ErrorElementMissing)
	test.That(t, errs[0].Message, test.ShouldContainSubstring, "range")
	// the default range survives
	test.That(t, l.AttenuationRange(), test.ShouldEqual, 10)
	test.That(t, l.LinearAttenuationFactor(), test.ShouldEqual, 0.5)
}

func TestLightLoadSpotNeedsAngles(t *testing.T) {
	doc := `
<light name="l" type="spot">
  <direction>0 0 -1</direction>
  <spot><inner_angle>0.3</inner_angle></spot>
</light>`
	l := NewLight()
	errs := l.Load(mustParse(t, doc))
	test.That(t, errs, test.ShouldHaveLength, 2)
	test.That(t, errs[0].Message, test.ShouldContainSubstring, "outer_angle")
	test.That(t, errs[1].Message, test.ShouldContainSubstring, "falloff")
	test.That(t, l.SpotInnerAngle(), test.ShouldEqual, 0.3)
}

func TestLightSetterClamps(t *testing.T) {
	l := NewLight()

	l.SetAttenuationRange(-5)
	test.That(t, l.AttenuationRange(), test.ShouldEqual, 0)

	l.SetLinearAttenuationFactor(2)
	test.That(t, l.LinearAttenuationFactor(), test.ShouldEqual, 1)
	l.SetLinearAttenuationFactor(-1)
	test.That(t, l.LinearAttenuationFactor(), test.ShouldEqual, 0)

	l.SetConstantAttenuationFactor(1.5)
	test.That(t, l.ConstantAttenuationFactor(), test.ShouldEqual, 1)

	l.SetQuadraticAttenuationFactor(-0.5)
	test.That(t, l.QuadraticAttenuationFactor(), test.ShouldEqual, 0)

	l.SetSpotInnerAngle(-1)
	test.That(t, l.SpotInnerAngle(), test.ShouldEqual, 0)
	l.SetSpotOuterAngle(math.Pi)
	test.That(t, l.SpotOuterAngle(), test.ShouldEqual, math.Pi)
	l.SetSpotFalloff(-2)
	test.That(t, l.SpotFalloff(), test.ShouldEqual, 0)
}
