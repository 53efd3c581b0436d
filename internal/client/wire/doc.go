// Package wire maps between the client's models and the recipe API's JSON.
//
// The API mixes conventions: request bodies use capitalised field names
// (Username, Utensils, Recipie) while responses are camelCase, ids come back
// as numbers, and error bodies take several shapes. Nothing outside this
// package knows any of that.
package wire
