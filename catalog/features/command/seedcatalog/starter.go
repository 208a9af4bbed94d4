package seedcatalog

import (
	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

// StarterBooks returns the books of a fresh installation. Their ids are assigned when seeding.
func StarterBooks() core.Books {
	return core.Books{
		core.BuildBook("", "Engineering Mathematics", "R. K. Jain", "TechPub", 2019, "Mathematics", 8),
		core.BuildBook("", "Programming in C", "Kernighan & Ritchie", "CJ Press", 2018, "Computer Science", 6),
		core.BuildBook("", "Data Structures and Algorithms", "Lipsa", "IndieBooks", 2020, "Computer Science", 10),
		core.BuildBook("", "Digital Logic Design", "M. Morris Mano", "Pearson", 2017, "Electronics", 5),
		core.BuildBook("", "Signals and Systems", "A. V. Oppenheim", "McGraw-Hill", 2015, "Electronics", 4),
		core.BuildBook("", "Operating Systems", "A. Silberschatz", "Wiley", 2019, "Computer Science", 7),
		core.BuildBook("", "Database Systems", "Ramakrishnan", "TMH", 2021, "Computer Science", 7),
		core.BuildBook("", "Thermodynamics", "P. K. Nag", "Hill", 2016, "Mechanical", 5),
		core.BuildBook("", "Computer Networks", "A. S. Tanenbaum", "Pearson", 2018, "Computer Science", 6),
		core.BuildBook("", "Design of Machine Elements", "V. B. Bhandari", "McGraw-Hill", 2016, "Mechanical", 4),
		core.BuildBook("", "Compiler Design", "Aho & Ullman", "Pearson", 2013, "Computer Science", 3),
		core.BuildBook("", "Power Systems", "C. L. Wadhwa", "NewAge", 2012, "Electrical", 4),
		core.BuildBook("", "Control Systems", "Nagrath & Gopal", "NewAge", 2014, "Electronics", 4),
		core.BuildBook("", "Microprocessors and Interfacing", "Douglas V Hall", "Tata McGraw-Hill", 2015, "Electronics", 3),
		core.BuildBook("", "Artificial Intelligence: A Modern Approach", "Russell & Norvig", "Pearson", 2020, "Computer Science", 4),
		core.BuildBook("", "Machine Learning", "Tom M. Mitchell", "McGraw-Hill", 2017, "Computer Science", 4),
		core.BuildBook("", "Embedded Systems", "Raj Kamal", "McGraw-Hill", 2016, "Electronics", 3),
		core.BuildBook("", "Software Engineering", "Ian Sommerville", "Pearson", 2015, "Computer Science", 5),
		core.BuildBook("", "Probability & Statistics for Engineers", "Hogg & Craig", "Prentice Hall", 2014, "Mathematics", 4),
		core.BuildBook("", "Numerical Methods", "S. S. Sastry", "PHI", 2018, "Mathematics", 3),
		core.BuildBook("", "Computer Architecture", "Hennessy & Patterson", "Morgan Kaufmann", 2014, "Computer Science", 4),
		core.BuildBook("", "VLSI Design", "Wayne Wolf", "Pearson", 2016, "Electronics", 3),
		core.BuildBook("", "Finite Element Analysis", "R. D. Cook", "Wiley", 2010, "Mechanical", 2),
		core.BuildBook("", "Digital Communication", "John Proakis", "McGraw-Hill", 2011, "Electronics", 3),
	}
}

// StarterUsers returns the members of a fresh installation.
func StarterUsers() core.Users {
	return core.Users{
		core.BuildUser("Arjun Sharma", "arjun.sharma@itcollege.ac.in", "IT21B001", "+91-9999900001"),
		core.BuildUser("Neha Singh", "neha.singh@itcollege.ac.in", "IT21B002", "+91-9999900002"),
		core.BuildUser("Rohit Kumar", "rohit.kumar@itcollege.ac.in", "IT21B003", "+91-9999900003"),
		core.BuildUser("Priya Verma", "priya.verma@itcollege.ac.in", "IT21B004", "+91-9999900004"),
		core.BuildUser("Siddharth Gupta", "siddharth.gupta@itcollege.ac.in", "IT21B005", "+91-9999900005"),
		core.BuildUser("Pooja Kaur", "pooja.kaur@itcollege.ac.in", "IT21B006", "+91-9999900006"),
		core.BuildUser("Vikram Patel", "vikram.patel@itcollege.ac.in", "IT21B007", "+91-9999900007"),
		core.BuildUser("Ankita Rao", "ankita.rao@itcollege.ac.in", "IT21B008", "+91-9999900008"),
		core.BuildUser("Manish Yadav", "manish.yadav@itcollege.ac.in", "IT21B009", "+91-9999900009"),
		core.BuildUser("Kavita Joshi", "kavita.joshi@itcollege.ac.in", "IT21B010", "+91-9999900010"),
		core.BuildUser("Suresh Reddy", "suresh.reddy@itcollege.ac.in", "IT21B011", "+91-9999900011"),
		core.BuildUser("Divya Nair", "divya.nair@itcollege.ac.in", "IT21B012", "+91-9999900012"),
		core.BuildUser("Amit Gupta", "amit.gupta@itcollege.ac.in", "IT21B013", "+91-9999900013"),
		core.BuildUser("Ritu Mehra", "ritu.mehra@itcollege.ac.in", "IT21B014", "+91-9999900014"),
		core.BuildUser("Karan Singh", "karan.singh@itcollege.ac.in", "IT21B015", "+91-9999900015"),
		core.BuildUser("Meera Iyer", "meera.iyer@itcollege.ac.in", "IT21B016", "+91-9999900016"),
		core.BuildUser("Sahil Sharma", "sahil.sharma@itcollege.ac.in", "IT21B017", "+91-9999900017"),
		core.BuildUser("Rina Das", "rina.das@itcollege.ac.in", "IT21B018", "+91-9999900018"),
		core.BuildUser("Gaurav Jain", "gaurav.jain@itcollege.ac.in", "IT21B019", "+91-9999900019"),
		core.BuildUser("Tina Kapoor", "tina.kapoor@itcollege.ac.in", "IT21B020", "+91-9999900020"),
	}
}
