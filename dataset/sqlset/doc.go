/*
Package sqlset provides methods to read and write tables of categorical
tokens using SQL databases as backends.

Tables are stored on a samples database table with a TEXT column per
attribute, named after it, and an id primary key column that keeps the
order in which rows were added. Rows are read back in id order, so the
header and example order of a written table are preserved.
*/
package sqlset
