package catalog

// glossary explains the techniques the problems exercise. Keys are the terms
// listed in problemTerms.
var glossary = map[string]string{
	"palindrome": "A string/sequence that reads the same forward and backward. " +
		"Normalization usually lowercases and strips non-alphanumerics. " +
		"Typical check: two pointers from the ends, or compare to the reversed string.",
	"two pointers": "Technique with two indices that move based on comparisons. " +
		"Patterns: opposite ends (palindrome), fast/slow (cycle detection), left/right window edges. " +
		"Reduces nested loops to a linear scan on ordered or structured data.",
	"hash map": "Key-to-value structure with average O(1) insert and lookup. " +
		"Common uses: Two Sum complements, frequency counts, last-seen indices.",
	"stack": "LIFO structure with O(1) push and pop. " +
		"Common in balanced parentheses, iterative DFS and undo operations.",
	"sliding window": "Maintain a window [l, r] and adjust by growing and shrinking. " +
		"Works best on arrays and strings to track counts and constraints, " +
		"such as the longest substring without repeats.",
	"Kadane's algorithm": "Linear-time algorithm for the maximum subarray sum. " +
		"Scan with cur = max(x, cur + x) and best = max(best, cur); " +
		"negative prefixes only hurt future sums, so they are dropped.",
	"binary search": "Search sorted data by halving the interval each step, O(log n). " +
		"Careful with the mid calculation and loop conditions; " +
		"generalizes to predicate-based search on the answer.",
	"frequency count": "Counting occurrences of items, usually with a hash map. " +
		"Used in top-k frequent, anagram grouping and sliding windows.",
	"prefix/suffix product": "Cumulative products from the left and right compute product-except-self " +
		"without division and handle zeros gracefully: build a prefix array, " +
		"then multiply by a running suffix on a backward pass.",
	"heap": "Priority queue giving O(log n) insert and extract-min. " +
		"Patterns: track the top k, merge k lists, shortest paths.",
	"quickselect": "Average O(n) selection of the k-th smallest/largest via partitioning. " +
		"A pivot splits the array and only the side containing the k-th index is recursed into.",
	"dynamic programming": "Solve recursive problems by storing subproblem results. " +
		"Two styles: top-down memoization and bottom-up tabulation. " +
		"Hallmarks: optimal substructure plus overlapping subproblems; " +
		"examples: coin change, climbing stairs.",
	"time complexity": "Asymptotic running time as input size grows. " +
		"Common classes: O(1), O(log n), O(n), O(n log n), O(n^2). " +
		"Prefer linear or n log n when feasible.",
}

// problemTerms links each problem to the glossary terms it exercises.
var problemTerms = map[string][]string{
	"palindrome":          {"palindrome", "two pointers"},
	"two_sum":             {"hash map"},
	"binary_search":       {"binary search"},
	"max_subarray":        {"Kadane's algorithm"},
	"frequency_sort":      {"frequency count"},
	"balanced_brackets":   {"stack"},
	"climb_stairs":        {"dynamic programming", "time complexity"},
	"coin_change":         {"dynamic programming", "time complexity"},
	"product_except_self": {"prefix/suffix product"},
	"kth_largest":         {"quickselect", "heap"},
	"longest_substring_without_repeating_characters": {"sliding window", "hash map"},
}
