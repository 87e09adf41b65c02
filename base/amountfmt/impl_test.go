package amountfmt

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/swaplens/goapi/base/ctx"
	"github.com/swaplens/goapi/domain"
	mockToken "github.com/swaplens/goapi/domain/mocks"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	mockTokens *mockToken.TokenRepo
	subject    *impl
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.mockTokens = &mockToken.TokenRepo{}
	t.subject = &impl{
		tokens: t.mockTokens,
	}
}

func (t *testsuite) TestFormatBaseUnits() {
	tokenAddr := domain.Address("0xb8ce59fc3717ada4c02eadf9682a9e934f625ebb")

	t.mockTokens.
		On("FindDecimals", mockCtx, tokenAddr).
		Return(int32(6), nil)

	t.Equal("2.0", t.subject.FormatBaseUnits(mockCtx, tokenAddr, "2000000"))
	t.Equal("2.5", t.subject.FormatBaseUnits(mockCtx, tokenAddr, "2500000"))
	t.Equal("0.000001", t.subject.FormatBaseUnits(mockCtx, tokenAddr, "1"))
}

func (t *testsuite) TestFormatBaseUnitsUnknownToken() {
	tokenAddr := domain.Address("0x1111111111111111111111111111111111111111")

	t.mockTokens.
		On("FindDecimals", mockCtx, tokenAddr).
		Return(int32(0), domain.ErrNotFound)

	t.Equal("2000000", t.subject.FormatBaseUnits(mockCtx, tokenAddr, "2000000"))
}

func (t *testsuite) TestFormatBaseUnitsBadAmount() {
	tokenAddr := domain.Address("0xb8ce59fc3717ada4c02eadf9682a9e934f625ebb")

	t.mockTokens.
		On("FindDecimals", mockCtx, tokenAddr).
		Return(int32(6), nil)

	t.Equal("not-a-number", t.subject.FormatBaseUnits(mockCtx, tokenAddr, "not-a-number"))
}
