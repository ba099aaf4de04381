package stoplist

import "strings"

var defaultStopwords = strings.Fields(`
a an the and or but if then else for while to of in on at by is are was were be been being
i me my you your we they them it this that these those from with as about into over after under
s t ll ve re d m don not no yes ok thanks thank please can could would should may might
has have had having do does did done doing will just so too very than there their theirs its
our ours us he she him her his what which who whom when where why how all any each some such
only own same other both few more most out off again further once here up down also am
`)

var defaultGeneric = strings.Fields(`
feature features product products app apps application thing things stuff new really
lot lots bit get got gets getting use used uses using make makes made way one
like much many still even need needs want wants time overall
`)

// DefaultStopwords returns a copy of the built-in stopword list.
func DefaultStopwords() []string {
	return append([]string(nil), defaultStopwords...)
}

// DefaultGeneric returns a copy of the built-in generic-term list.
func DefaultGeneric() []string {
	return append([]string(nil), defaultGeneric...)
}
