// Package dataitem declares record types from reusable typed field
// descriptors. The root package re-exports the types and constructors needed
// for the common path: declare items, attach them to a schema, create and
// validate records, and move them through a serializer. The sub-packages hold
// the full surface.
package dataitem

import (
	"github.com/goliatone/go-dataitem/pkg/choice"
	"github.com/goliatone/go-dataitem/pkg/dataset"
	"github.com/goliatone/go-dataitem/pkg/item"
	"github.com/goliatone/go-dataitem/pkg/property"
	"github.com/goliatone/go-dataitem/pkg/serialize"
)

// Item is the capability surface every field descriptor implements.
type Item = item.Item

// Record is the container contract items read and write through.
type Record = item.Record

// Schema is a frozen, ordered record type declaration.
type Schema = dataset.Schema

// Resolver supplies a dynamic default or configuration attribute per record
// instance.
type Resolver = property.Resolver

// Choice aliases for declaring selection fields.
type (
	ChoiceEntry  = choice.Entry
	ChoiceList   = choice.List
	ChoiceSource = choice.Source
)

// Writer and Reader are the serialization boundary contracts.
type (
	Writer = serialize.Writer
	Reader = serialize.Reader
)

// Schema declaration.
var (
	NewSchema  = dataset.New
	MustSchema = dataset.MustNew
)

// Item constructors, re-exported so declaration sites read as one vocabulary.
var (
	NewInt            = item.NewInt
	NewFloat          = item.NewFloat
	NewBool           = item.NewBool
	NewString         = item.NewString
	NewText           = item.NewText
	NewFontFamily     = item.NewFontFamily
	NewColor          = item.NewColor
	NewDate           = item.NewDate
	NewDateTime       = item.NewDateTime
	NewFileSave       = item.NewFileSave
	NewFileOpen       = item.NewFileOpen
	NewFilesOpen      = item.NewFilesOpen
	NewDirectory      = item.NewDirectory
	NewChoice         = item.NewChoice
	NewMultipleChoice = item.NewMultipleChoice
	NewImageChoice    = item.NewImageChoice
	NewFloatArray     = item.NewFloatArray
	NewButton         = item.NewButton
	NewDict           = item.NewDict
)

// Choice source helpers.
var (
	Labels    = choice.Labels
	Pairs     = choice.Pairs
	WithIcons = choice.WithIcons
	StaticOf  = choice.StaticOf
	DynamicOf = choice.DynamicOf
)

// Static and Dynamic build property values for defaults and configuration
// attributes.
var (
	Static  = property.Static
	Dynamic = property.Dynamic
)
