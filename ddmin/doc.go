// Package ddmin implements Zeller's minimizing delta debugging algorithm:
// repeatedly split the configuration into granularity-many complements,
// keep the first complement that still fails, and grow granularity when
// none does. It is the baseline Algorithm every other reducer in this
// module is compared against.
package ddmin
