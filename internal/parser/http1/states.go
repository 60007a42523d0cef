package http1

type parserState uint8

const (
	eMethodStart parserState = iota + 1
	eMethod
	eURIStem
	eURIQuery
	eVersionH
	eVersionT1
	eVersionT2
	eVersionP
	eVersionSlash
	eVersionMajorStart
	eVersionMajor
	eVersionMinorStart
	eVersionMinor
	eExpectingLF
	eExpectingCR
	eHeaderWhitespace
	eHeaderStart
	eHeaderName
	eSpaceBeforeHeaderValue
	eHeaderValue
	eExpectingFinalLF
	eExpectingFinalCR
)
