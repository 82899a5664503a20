// Package schema provides CUE-backed runtime validation for component props.
//
// Every registrable component type declares its props contract as a CUE
// struct: required and optional fields, primitive types, enumerations,
// defaults, and cross-field rules such as "variant X requires field Y"
// (expressed as CUE conditional fields or disjunctions).
//
// Validation unifies the effective props (plus the instance's variant) with
// the compiled schema and demands a concrete result. Failures come back as
// structured ValidationError values with stable codes - never as a panic or
// an unstructured error string - so the rendering pipeline can degrade a
// single instance to a placeholder and keeps going.
//
// The schema's top level is an OPEN struct: keys the schema does not
// declare (uniform runtime-injected fields, leftovers from older blob
// versions) pass through unvalidated. Declared fields are always enforced.
//
// The discipline callers must keep: use only the coerced output of
// Validate, never the raw input. CUE defaulting may fill optional fields,
// and the renderer must see the filled-in result.
package schema
