// Package expression builds gene x cell expression matrices from component
// sufficient statistics and estimates the gene x gene co-occurrence table.
package expression
