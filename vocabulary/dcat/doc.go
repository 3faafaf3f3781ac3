// Package dcat defines the RDF vocabulary used when rendering a dataset
// catalog as DCAT-AP-NO: the DCAT, Dublin Core Terms, and vCard namespaces
// and the class and property IRIs drawn from them.
package dcat
